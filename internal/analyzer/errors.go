package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput matches any *MissingInputError
	ErrMissingInput = errors.New("missing input")

	// ErrInvalidCategory matches any *InvalidCategorySyntaxError
	ErrInvalidCategory = errors.New("invalid category syntax")
)

// Input field names reported by MissingInputError
const (
	FieldData       = "data"
	FieldCategories = "categories"
)

// MissingInputError is returned when the data or the categories input is
// empty after trimming. No analysis is performed.
type MissingInputError struct {
	Field string `json:"field"`
}

// Error implements the error interface
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s is empty", e.Field)
}

// Is makes errors.Is(err, ErrMissingInput) succeed
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// InvalidCategorySyntaxError describes a category whose numeric parts did
// not parse. It is recovered: the category counts 0 and analysis continues.
type InvalidCategorySyntaxError struct {
	Category string       `json:"category"`
	Kind     CategoryKind `json:"kind"`
	Reason   string       `json:"reason"`
}

// Error implements the error interface
func (e *InvalidCategorySyntaxError) Error() string {
	label := "invalid range"
	if e.Kind == KindExact || e.Kind == KindText {
		label = "invalid category"
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", label, e.Category)
	}
	return fmt.Sprintf("%s: %s (%s)", label, e.Category, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidCategory) succeed
func (e *InvalidCategorySyntaxError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// IsMissingInput checks if an error is a missing input error
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}
