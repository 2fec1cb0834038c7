package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency value held as an integer scaled by 10,000,
// giving exactly four fractional digits. All arithmetic happens on the
// scaled representation; decimal conversion only ever happens at the
// system boundary.
type Amount int64

const amountScale = 4

// MaxAmount is the largest representable scaled value.
const MaxAmount = Amount(math.MaxInt64)

func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}

	return AmountFromDecimal(d)
}

func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative")
	}

	scaled := d.Shift(amountScale)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount has more than %d decimal places", amountScale)
	}
	if scaled.Cmp(decimal.NewFromInt(math.MaxInt64)) > 0 {
		return 0, ErrOverflow
	}

	return Amount(scaled.IntPart()), nil
}

// Add is checked: it fails with ErrOverflow instead of wrapping.
func (a Amount) Add(other Amount) (Amount, error) {
	if other > MaxAmount-a {
		return 0, ErrOverflow
	}

	return a + other, nil
}

// Sub is checked: it fails with ErrInsufficientFunds if other exceeds a.
func (a Amount) Sub(other Amount) (Amount, error) {
	if other > a {
		return 0, ErrInsufficientFunds
	}

	return a - other, nil
}

func (a Amount) GreaterOrEqual(other Amount) bool {
	return a >= other
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -amountScale)
}

// String renders the amount with exactly four fractional digits,
// padding with zeros.
func (a Amount) String() string {
	return a.Decimal().StringFixed(amountScale)
}
