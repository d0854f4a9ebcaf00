package valueobject

import (
	"fmt"
	"regexp"
)

// emailPattern requires something non-empty on both sides of a single '@'.
// Full mailbox validation belongs to the delivery provider.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// EmailAddress is a value object for a customer email address.
// It is immutable - construct it through NewEmailAddress.
type EmailAddress struct {
	value string
}

// NewEmailAddress creates an EmailAddress from a raw value
func NewEmailAddress(fieldName, raw string) (EmailAddress, error) {
	if raw == "" {
		return EmailAddress{}, ErrFieldEmpty(fieldName)
	}
	if !emailPattern.MatchString(raw) {
		return EmailAddress{}, ErrPatternMismatch(fieldName, raw, emailPattern.String())
	}
	return EmailAddress{value: raw}, nil
}

// MustNewEmailAddress creates an EmailAddress and panics on error
func MustNewEmailAddress(fieldName, raw string) EmailAddress {
	e, err := NewEmailAddress(fieldName, raw)
	if err != nil {
		panic(err)
	}
	return e
}

// Value returns the raw email address
func (e EmailAddress) Value() string {
	return e.value
}

// String returns the raw email address
func (e EmailAddress) String() string {
	return e.value
}

// Equals returns true if both addresses carry the same raw string
func (e EmailAddress) Equals(other EmailAddress) bool {
	return e.value == other.value
}

// ErrPatternMismatch reports a value that does not match its required pattern
func ErrPatternMismatch(fieldName, raw, pattern string) error {
	return fmt.Errorf("%s: '%s' must match the pattern '%s'", fieldName, raw, pattern)
}
