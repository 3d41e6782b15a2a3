package flooring

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in US dollars.
//
// The value is kept at full decimal precision; rounding to cents happens
// only when the value is formatted for a data file or for display.
type Money struct {
	value decimal.Decimal
}

// NewMoney wraps a decimal value as Money.
func NewMoney(value decimal.Decimal) Money { return Money{value: value} }

// ParseMoney parses a decimal string (as found in data files) as Money.
func ParseMoney(s string) (Money, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: value}, nil
}

// Decimal returns the underlying value at full precision.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// Text returns the value rounded to 2 decimal places (half-up) in the
// plain form used by the data files, e.g. "1087.50".
func (m Money) Text() string { return m.value.StringFixed(2) }

// String returns the value formatted for display with the USD formatter,
// e.g. "$1,087.50".
func (m Money) String() string {
	cents := m.value.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}
