package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a listing price or order total in whole currency units
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// The caller must not pass NaN or ±Inf; shopspring/decimal panics on them.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundWhole rounds to whole currency units, half away from zero
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Grouped renders the absolute whole-unit amount with sep between every
// three digits, counted from the right. The sign is left to the caller.
func (m Money) Grouped(sep string) string {
	digits := m.Abs().RoundWhole().StringFixed(0)
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// String returns the whole-unit amount without grouping
func (m Money) String() string {
	return m.RoundWhole().StringFixed(0)
}
