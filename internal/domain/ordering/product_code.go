package ordering

import (
	"fmt"
	"regexp"

	"github.com/ordertaking/backend/internal/domain/shared/valueobject"
)

var (
	widgetCodePattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCode identifies a product in the catalog. It is a closed union of
// WidgetCode and GizmoCode; consumers dispatch on the concrete type.
type ProductCode interface {
	// Value returns the raw code, e.g. "W1234" or "G123"
	Value() string

	isProductCode()
}

// WidgetCode is a product code of the form "W" followed by four digits
type WidgetCode struct {
	code string
}

func (WidgetCode) isProductCode() {}

// Value returns the raw widget code
func (c WidgetCode) Value() string { return c.code }

// String returns the raw widget code
func (c WidgetCode) String() string { return c.code }

// GizmoCode is a product code of the form "G" followed by three digits
type GizmoCode struct {
	code string
}

func (GizmoCode) isProductCode() {}

// Value returns the raw gizmo code
func (c GizmoCode) Value() string { return c.code }

// String returns the raw gizmo code
func (c GizmoCode) String() string { return c.code }

// NewWidgetCode creates a WidgetCode from a raw value
func NewWidgetCode(fieldName, raw string) (WidgetCode, error) {
	if raw == "" {
		return WidgetCode{}, valueobject.ErrFieldEmpty(fieldName)
	}
	if !widgetCodePattern.MatchString(raw) {
		return WidgetCode{}, valueobject.ErrPatternMismatch(fieldName, raw, widgetCodePattern.String())
	}
	return WidgetCode{code: raw}, nil
}

// NewGizmoCode creates a GizmoCode from a raw value
func NewGizmoCode(fieldName, raw string) (GizmoCode, error) {
	if raw == "" {
		return GizmoCode{}, valueobject.ErrFieldEmpty(fieldName)
	}
	if !gizmoCodePattern.MatchString(raw) {
		return GizmoCode{}, valueobject.ErrPatternMismatch(fieldName, raw, gizmoCodePattern.String())
	}
	return GizmoCode{code: raw}, nil
}

// NewProductCode creates a ProductCode from a raw value, dispatching on the
// first character: 'W' for widgets, 'G' for gizmos.
func NewProductCode(fieldName, raw string) (ProductCode, error) {
	if raw == "" {
		return nil, valueobject.ErrFieldEmpty(fieldName)
	}
	switch raw[0] {
	case 'W':
		return NewWidgetCode(fieldName, raw)
	case 'G':
		return NewGizmoCode(fieldName, raw)
	default:
		return nil, fmt.Errorf("%s: format not recognized '%s'", fieldName, raw)
	}
}

// MustNewProductCode creates a ProductCode and panics on error
func MustNewProductCode(fieldName, raw string) ProductCode {
	code, err := NewProductCode(fieldName, raw)
	if err != nil {
		panic(err)
	}
	return code
}
