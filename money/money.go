// Package money provides an immutable monetary value: an arbitrary-precision
// decimal amount paired with a currency code.
//
// Amounts are decimal.Decimal, never float64. A float64 cannot precisely
// store a value like 0.1, and the small rounding errors accumulate over
// time and corrupt balances.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money pairs a decimal amount with a currency code, e.g. "USD".
// The zero value Money{} is invalid; use New or NewFromFloat.
// Every operation returns a new Money; existing values are never mutated.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New creates a Money from a decimal amount and a currency code.
// The currency must not be blank.
func New(amount decimal.Decimal, currency string) (Money, error) {
	if strings.TrimSpace(currency) == "" {
		return Money{}, fmt.Errorf("%w: currency must not be blank", ErrInvalidArgument)
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewFromFloat creates a Money from a float64 amount. The conversion goes
// through the float's shortest exact decimal representation, so 10.50
// becomes exactly 10.5 and never a binary-float artifact like 10.49999.
func NewFromFloat(amount float64, currency string) (Money, error) {
	return New(decimal.NewFromFloat(amount), currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether m is the uninitialized zero value. A properly
// constructed Money always carries a currency, even when its amount is 0.
func (m Money) IsZero() bool { return m.currency == "" }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// Add returns a new Money holding the sum of m and other.
// Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other, "add"); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns a new Money holding the difference of m and other.
// Both operands must share a currency. The result may be negative; guarding
// against negative balances is the account's responsibility, not Money's.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.requireSameCurrency(other, "subtract"); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// GreaterThan reports whether m is strictly greater than other.
// Equal amounts yield false. Both operands must share a currency.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.requireSameCurrency(other, "compare"); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan reports whether m is strictly less than other.
// Equal amounts yield false. Both operands must share a currency.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.requireSameCurrency(other, "compare"); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// Equal reports whether m and other represent the same monetary value.
// The comparison ignores decimal scale: 10 USD equals 10.00 USD.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the value as "<amount> <currency>", e.g. "10 USD".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}

func (m Money) requireSameCurrency(other Money, op string) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: cannot %s %s and %s", ErrInvalidArgument, op, m.currency, other.currency)
	}
	return nil
}
