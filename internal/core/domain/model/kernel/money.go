package kernel

import (
	"fmt"

	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts: item prices, shipping fees,
// discounts, and settlement totals. It wraps shopspring/decimal to avoid the
// rounding surprises of binary floating point when summing line items.
//
// The zero value is a valid zero amount. Negative amounts are representable
// (a subtraction may pass through them); whether a negative amount is
// acceptable is decided at the point of use, e.g. an item price must be
// non-negative while a settlement total is checked after discounts apply.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromInt creates a Money from a whole-unit integer amount.
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromString parses a Money from its decimal string representation,
// as received from transports or read back from the database.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%q is not a decimal amount: %w", s, err),
		)
	}
	return Money{amount: amount}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer, e.g. a unit price
// times a quantity.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation, e.g. "255" or "19.99".
func (m Money) String() string {
	return m.amount.String()
}
