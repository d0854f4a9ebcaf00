package valueobject

import (
	"fmt"
	"unicode/utf8"
)

// String50 is a value object for short free-text fields: non-empty and at
// most 50 characters. It is immutable - construct it through NewString50.
type String50 struct {
	value string
}

const string50MaxLen = 50

// NewString50 creates a String50 from a raw value. The field name is used
// only for diagnostics in the returned error.
func NewString50(fieldName, raw string) (String50, error) {
	if raw == "" {
		return String50{}, ErrFieldEmpty(fieldName)
	}
	// The bound is characters, not bytes, as the error text promises
	if utf8.RuneCountInString(raw) > string50MaxLen {
		return String50{}, ErrFieldTooLong(fieldName, string50MaxLen)
	}
	return String50{value: raw}, nil
}

// MustNewString50 creates a String50 and panics on error
func MustNewString50(fieldName, raw string) String50 {
	s, err := NewString50(fieldName, raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the raw string
func (s String50) Value() string {
	return s.value
}

// String returns the raw string
func (s String50) String() string {
	return s.value
}

// Equals returns true if both values carry the same raw string
func (s String50) Equals(other String50) bool {
	return s.value == other.value
}

// OptionalString50 is a String50 that may be absent. An empty raw input is
// accepted as the absent value rather than rejected.
type OptionalString50 struct {
	value   string
	present bool
}

// NewOptionalString50 creates an OptionalString50 from a raw value. Empty
// input yields the absent value; present input follows the String50 rule.
func NewOptionalString50(fieldName, raw string) (OptionalString50, error) {
	if raw == "" {
		return OptionalString50{}, nil
	}
	if utf8.RuneCountInString(raw) > string50MaxLen {
		return OptionalString50{}, ErrFieldTooLong(fieldName, string50MaxLen)
	}
	return OptionalString50{value: raw, present: true}, nil
}

// IsPresent returns true if a value was provided
func (s OptionalString50) IsPresent() bool {
	return s.present
}

// Value returns the raw string and whether it is present
func (s OptionalString50) Value() (string, bool) {
	return s.value, s.present
}

// OrEmpty returns the raw string, or "" when absent
func (s OptionalString50) OrEmpty() string {
	return s.value
}

// ErrFieldEmpty reports a required field that was null or empty
func ErrFieldEmpty(fieldName string) error {
	return fmt.Errorf("%s: must not be null or empty", fieldName)
}

// ErrFieldTooLong reports a field exceeding its maximum length
func ErrFieldTooLong(fieldName string, maxLen int) error {
	return fmt.Errorf("%s: must not be more than %d chars", fieldName, maxLen)
}
