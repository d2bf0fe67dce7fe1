package analyzer

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseCategory classifies a single category specification. The first
// matching rule wins:
//
//  1. contains "-": range, split at the first dash
//  2. starts with "<": strict upper bound
//  3. starts with ">": strict lower bound
//  4. parses as a number: exact value
//  5. anything else: case-insensitive text
//
// A spec such as "abc-def" is therefore an invalid range, never text.
// The returned Category always carries its kind; on error Valid is false.
func ParseCategory(spec string) (Category, error) {
	spec = strings.TrimSpace(spec)
	cat := Category{Spec: spec}

	switch {
	case spec == "":
		cat.Kind = KindExact
		return cat, invalid(cat, "empty specification")

	case strings.Contains(spec, "-"):
		cat.Kind = KindRange
		lowStr, highStr, _ := strings.Cut(spec, "-")
		low, okLow := ParseNumber(lowStr)
		high, okHigh := ParseNumber(highStr)
		switch {
		case !okLow && !okHigh:
			return cat, invalid(cat, "bounds are not numbers")
		case !okLow:
			return cat, invalid(cat, "lower bound is not a number")
		case !okHigh:
			return cat, invalid(cat, "upper bound is not a number")
		}
		cat.Low, cat.High = low, high

	case strings.HasPrefix(spec, "<"):
		cat.Kind = KindLessThan
		limit, ok := ParseNumber(spec[1:])
		if !ok {
			return cat, invalid(cat, "limit is not a number")
		}
		cat.Limit = limit

	case strings.HasPrefix(spec, ">"):
		cat.Kind = KindGreaterThan
		limit, ok := ParseNumber(spec[1:])
		if !ok {
			return cat, invalid(cat, "limit is not a number")
		}
		cat.Limit = limit

	default:
		if value, ok := ParseNumber(spec); ok {
			cat.Kind = KindExact
			cat.Limit = value
		} else {
			cat.Kind = KindText
		}
	}

	cat.Valid = true
	return cat, nil
}

// ParseCategories parses every comma-separated specification in order.
// Invalid categories are still returned, with Valid=false, alongside their
// errors so callers can report them and count them as 0.
func ParseCategories(raw string) ([]Category, []*InvalidCategorySyntaxError) {
	specs := SplitCategories(raw)
	categories := make([]Category, 0, len(specs))
	var warnings []*InvalidCategorySyntaxError

	for _, spec := range specs {
		cat, err := ParseCategory(spec)
		categories = append(categories, cat)
		if err != nil {
			var syntaxErr *InvalidCategorySyntaxError
			if errors.As(err, &syntaxErr) {
				warnings = append(warnings, syntaxErr)
			}
		}
	}

	return categories, warnings
}

// decimalPattern matches plain decimal literals with an optional exponent.
// Hex floats, digit separators and inf spellings are not numbers.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses a trimmed decimal or float literal. Empty strings and
// NaN are not numbers; values beyond float64 range become +/-Inf, as does
// the literal "Infinity".
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, false
		}
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func invalid(cat Category, reason string) error {
	return &InvalidCategorySyntaxError{
		Category: cat.Spec,
		Kind:     cat.Kind,
		Reason:   reason,
	}
}
