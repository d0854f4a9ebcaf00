package valueobject

import "regexp"

var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

// ZipCode is a value object for a US-style postal code: exactly five digits.
// It is immutable - construct it through NewZipCode.
type ZipCode struct {
	value string
}

// NewZipCode creates a ZipCode from a raw value
func NewZipCode(fieldName, raw string) (ZipCode, error) {
	if raw == "" {
		return ZipCode{}, ErrFieldEmpty(fieldName)
	}
	if !zipCodePattern.MatchString(raw) {
		return ZipCode{}, ErrPatternMismatch(fieldName, raw, zipCodePattern.String())
	}
	return ZipCode{value: raw}, nil
}

// MustNewZipCode creates a ZipCode and panics on error
func MustNewZipCode(fieldName, raw string) ZipCode {
	z, err := NewZipCode(fieldName, raw)
	if err != nil {
		panic(err)
	}
	return z
}

// Value returns the raw zip code
func (z ZipCode) Value() string {
	return z.value
}

// String returns the raw zip code
func (z ZipCode) String() string {
	return z.value
}
