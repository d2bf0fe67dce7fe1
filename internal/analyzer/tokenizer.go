package analyzer

import (
	"strings"
	"unicode"
)

// Tokenize splits raw input on runs of whitespace and commas. Tokens are
// trimmed, never empty, and keep their input order.
func Tokenize(raw string) []string {
	fields := strings.FieldsFunc(raw, isSeparator)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// SplitCategories splits the categories input on commas and trims each
// specification. Empty specifications are kept so that positions line up
// with what the user typed.
func SplitCategories(raw string) []string {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	specs := make([]string, len(parts))
	for i, p := range parts {
		specs[i] = strings.TrimSpace(p)
	}
	return specs
}
