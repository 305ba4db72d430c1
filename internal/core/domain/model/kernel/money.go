package kernel

import (
	"fmt"
	"math"

	"orderboard/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (cents). Storing cents as an integer avoids floating-point rounding
// issues when summing line items and comparing totals.
//
// The zero value is a valid amount of zero. Negative amounts are invalid and
// rejected by the constructors.
//
// Example usage:
//
//	price, err := kernel.NewMoney(1250) // R$ 12.50
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(price.String()) // "12.50"
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in minor units (cents).
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d is not a valid amount in cents", cents),
		)
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat creates a Money value from a major-unit float (e.g. 12.5),
// rounding to the nearest cent. Returns an error if the amount is negative.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(int64(math.Round(amount * 100.0)))
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount in major units as a float64.
// Intended for serialization boundaries, not for arithmetic.
func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Multiply returns the amount multiplied by a non-negative integer factor.
func (m Money) Multiply(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// IsEqual compares two monetary amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted in major units with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
