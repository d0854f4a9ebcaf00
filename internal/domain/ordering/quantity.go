package ordering

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	unitQuantityMin = decimal.NewFromInt(1)
	unitQuantityMax = decimal.NewFromInt(1000)

	// The kilogram lower bound is 0.05; see DESIGN.md for the recorded
	// decision between 0.05 and 0.5.
	kilogramQuantityMin = decimal.RequireFromString("0.05")
	kilogramQuantityMax = decimal.RequireFromString("100.00")
)

// OrderQuantity is the quantity of an order line. It is a closed union whose
// variant is determined by the product code of the line: widgets are counted
// in whole units, gizmos are weighed in kilograms.
type OrderQuantity interface {
	// Value returns the quantity as a decimal regardless of variant
	Value() decimal.Decimal

	isOrderQuantity()
}

// UnitQuantity is a whole-unit quantity between 1 and 1000, used for widgets
type UnitQuantity struct {
	value int64
}

func (UnitQuantity) isOrderQuantity() {}

// Value returns the quantity as a decimal
func (q UnitQuantity) Value() decimal.Decimal { return decimal.NewFromInt(q.value) }

// Units returns the quantity as an integer count
func (q UnitQuantity) Units() int64 { return q.value }

// KilogramQuantity is a decimal weight between 0.05 and 100.00 kg, used for gizmos
type KilogramQuantity struct {
	value decimal.Decimal
}

func (KilogramQuantity) isOrderQuantity() {}

// Value returns the quantity as a decimal
func (q KilogramQuantity) Value() decimal.Decimal { return q.value }

// Kilograms returns the weight in kilograms
func (q KilogramQuantity) Kilograms() decimal.Decimal { return q.value }

// NewUnitQuantity creates a UnitQuantity from a raw decimal. The raw value
// must be integer-valued and within [1, 1000]. The bounds are checked on the
// decimal itself; IntPart would silently wrap values beyond int64 range.
func NewUnitQuantity(fieldName string, raw decimal.Decimal) (UnitQuantity, error) {
	if !raw.IsInteger() {
		return UnitQuantity{}, fmt.Errorf("%s: must be a whole number of units", fieldName)
	}
	if raw.LessThan(unitQuantityMin) {
		return UnitQuantity{}, errBelowMinimum(fieldName, unitQuantityMin)
	}
	if raw.GreaterThan(unitQuantityMax) {
		return UnitQuantity{}, errAboveMaximum(fieldName, unitQuantityMax)
	}
	return UnitQuantity{value: raw.IntPart()}, nil
}

// NewKilogramQuantity creates a KilogramQuantity from a raw decimal within
// [0.05, 100.00].
func NewKilogramQuantity(fieldName string, raw decimal.Decimal) (KilogramQuantity, error) {
	if raw.LessThan(kilogramQuantityMin) {
		return KilogramQuantity{}, errBelowMinimum(fieldName, kilogramQuantityMin)
	}
	if raw.GreaterThan(kilogramQuantityMax) {
		return KilogramQuantity{}, errAboveMaximum(fieldName, kilogramQuantityMax)
	}
	return KilogramQuantity{value: raw}, nil
}

// NewOrderQuantity creates the OrderQuantity variant matching the product
// code of the line: UnitQuantity for widgets, KilogramQuantity for gizmos.
func NewOrderQuantity(fieldName string, code ProductCode, raw decimal.Decimal) (OrderQuantity, error) {
	switch code.(type) {
	case WidgetCode:
		return NewUnitQuantity(fieldName, raw)
	case GizmoCode:
		return NewKilogramQuantity(fieldName, raw)
	default:
		return nil, fmt.Errorf("%s: unknown product code type %T", fieldName, code)
	}
}

func errBelowMinimum(fieldName string, min decimal.Decimal) error {
	return fmt.Errorf("%s: must not be less than %s", fieldName, min)
}

func errAboveMaximum(fieldName string, max decimal.Decimal) error {
	return fmt.Errorf("%s: must not be greater than %s", fieldName, max)
}
