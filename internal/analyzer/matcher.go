package analyzer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Dataset is a token sequence with its numeric view pre-computed
type Dataset struct {
	tokens  []string
	numbers []float64
	folded  []string
}

// NewDataset pre-computes the numeric subset and the case-folded form of
// every token so each category is matched without re-parsing
func NewDataset(tokens []string) *Dataset {
	ds := &Dataset{
		tokens:  tokens,
		numbers: make([]float64, 0, len(tokens)),
		folded:  make([]string, len(tokens)),
	}

	caser := cases.Lower(language.Und)
	for i, tok := range tokens {
		if v, ok := ParseNumber(tok); ok {
			ds.numbers = append(ds.numbers, v)
		}
		ds.folded[i] = foldText(caser, tok)
	}

	return ds
}

// Len returns the number of tokens
func (d *Dataset) Len() int {
	return len(d.tokens)
}

// NumericLen returns the number of tokens that parse as numbers
func (d *Dataset) NumericLen() int {
	return len(d.numbers)
}

// Tokens returns the tokens in input order
func (d *Dataset) Tokens() []string {
	return d.tokens
}

// CategoryMatcher counts dataset tokens falling into a category
type CategoryMatcher struct{}

// NewCategoryMatcher creates a new category matcher
func NewCategoryMatcher() *CategoryMatcher {
	return &CategoryMatcher{}
}

// Count returns the frequency of a category. Invalid categories count 0.
func (m *CategoryMatcher) Count(cat Category, ds *Dataset) int {
	if !cat.Valid {
		return 0
	}
	if cat.Kind == KindText {
		return m.countText(cat.Spec, ds)
	}
	return m.countNumeric(cat, ds)
}

// countNumeric only looks at numeric tokens
func (m *CategoryMatcher) countNumeric(cat Category, ds *Dataset) int {
	count := 0
	for _, v := range ds.numbers {
		if matchNumber(cat, v) {
			count++
		}
	}
	return count
}

func matchNumber(cat Category, v float64) bool {
	switch cat.Kind {
	case KindRange:
		return v >= cat.Low && v <= cat.High
	case KindLessThan:
		return v < cat.Limit
	case KindGreaterThan:
		return v > cat.Limit
	case KindExact:
		return v == cat.Limit
	default:
		return false
	}
}

// countText compares against every token, numeric or not
func (m *CategoryMatcher) countText(spec string, ds *Dataset) int {
	target := foldText(cases.Lower(language.Und), spec)
	count := 0
	for _, f := range ds.folded {
		if f == target {
			count++
		}
	}
	return count
}

// foldText returns the NFC-normalized lower-case form used for text equality
func foldText(caser cases.Caser, s string) string {
	return caser.String(norm.NFC.String(s))
}
