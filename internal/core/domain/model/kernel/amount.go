package kernel

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
	"fueltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of fractional digits kept for every amount.
	AmountScale int32 = 2
	// AmountPrecision is the total number of significant digits a column can hold.
	AmountPrecision int32 = 18
)

var (
	// ErrAmountIsNotConstructed is returned when a zero value Amount is used.
	ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("amount must be created via NewAmount or ParseAmount")

	// maxAmount is the first value that no longer fits into NUMERIC(18,2).
	maxAmount = decimal.New(1, AmountPrecision-AmountScale)
)

// Amount is a non-negative decimal with fixed precision NUMERIC(18,2).
// Quantities in liters, prices per liter, totals, payment amounts and vehicle
// capacities are all Amounts, so arithmetic never goes through floating point.
//
// Values are rounded half away from zero to two fractional digits on construction
// and after every multiplication.
//
// Example:
//
//	quantity, _ := kernel.ParseAmount("100.00")
//	price, _ := kernel.ParseAmount("1.50")
//	total, _ := quantity.Mul(price)
//	fmt.Println(total) // 150.00
type Amount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewAmount rounds value to two fractional digits and checks it fits NUMERIC(18,2).
func NewAmount(value decimal.Decimal) (Amount, error) {
	rounded := value.Round(AmountScale)

	if rounded.IsNegative() {
		return Amount{}, errs.NewValueIsOutOfRangeError("amount", rounded.StringFixed(AmountScale), "0.00", maxAmount)
	}

	if rounded.GreaterThanOrEqual(maxAmount) {
		return Amount{}, errs.NewValueIsOutOfRangeError(
			"amount", rounded.StringFixed(AmountScale), "0.00", maxAmount.Sub(decimal.New(1, -AmountScale)))
	}

	return Amount{value: rounded, guard: guard.NewConstructorGuard()}, nil
}

// ParseAmount builds an Amount from its decimal string form, e.g. "1250.75".
func ParseAmount(raw string) (Amount, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal number", raw))
	}
	return NewAmount(value)
}

// ZeroAmount returns a constructed amount equal to 0.00.
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the amount was created through a constructor.
func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

// Decimal exposes the underlying value for persistence and reporting.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String formats the amount with exactly two fractional digits.
func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}

// IsZero reports whether the amount equals 0.00.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsPositive reports whether the amount is greater than 0.00.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// Equal compares two amounts by value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// GreaterThan reports whether a > other.
func (a Amount) GreaterThan(other Amount) bool {
	return a.value.GreaterThan(other.value)
}

// LessThan reports whether a < other.
func (a Amount) LessThan(other Amount) bool {
	return a.value.LessThan(other.value)
}

// Add returns a + other, failing if the sum overflows NUMERIC(18,2).
func (a Amount) Add(other Amount) (Amount, error) {
	return NewAmount(a.value.Add(other.value))
}

// Mul returns a × other rounded to two fractional digits.
func (a Amount) Mul(other Amount) (Amount, error) {
	return NewAmount(a.value.Mul(other.value))
}
