package decimal

import (
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. The value must be
// finite.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Sum adds up a list of amounts.
func Sum(amounts ...decimal.Decimal) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Money{total}
}

// Round rounds the money amount to cents, half-up.
func (m Money) Round() Money {
	return Money{m.Decimal.Shift(2).Add(half).Floor().Shift(-2)}
}

// Whole rounds to the nearest whole currency unit. Ties round toward
// positive infinity (-2.5 becomes -2), the way the dashboard always has.
func (m Money) Whole() Money {
	return Money{m.Decimal.Add(half).Floor()}
}

// Share scales the amount by an ownership fraction without rounding.
func (m Money) Share(fraction decimal.Decimal) Money {
	return Money{m.Decimal.Mul(fraction)}
}

// Float returns the amount as a float64 for the projection math.
func (m Money) Float() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
