package cli

import (
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// GetKindEmoji returns the symbol shown next to a category of the given kind
func GetKindEmoji(kind analyzer.CategoryKind) string {
	switch kind {
	case analyzer.KindRange:
		return GetEmoji("range")
	case analyzer.KindLessThan, analyzer.KindGreaterThan:
		return GetEmoji("bound")
	case analyzer.KindExact:
		return GetEmoji("number")
	case analyzer.KindText:
		return GetEmoji("text")
	default:
		return GetEmoji("info")
	}
}
