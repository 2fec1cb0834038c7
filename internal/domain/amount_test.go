package domain_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/payment-engine/internal/domain"
)

func TestParseAmount(t *testing.T) {
	t.Run("parses whole and fractional values", func(t *testing.T) {
		a, err := domain.ParseAmount("10.5")
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(105000), a)

		a, err = domain.ParseAmount(" 0.0001 ")
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(1), a)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := domain.ParseAmount("-1.0")
		assert.Error(t, err)
	})

	t.Run("rejects more than four decimal places", func(t *testing.T) {
		_, err := domain.ParseAmount("1.00001")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := domain.ParseAmount("ten")
		assert.Error(t, err)
	})

	t.Run("rejects values beyond the representable range", func(t *testing.T) {
		_, err := domain.ParseAmount("99999999999999999999.0")
		assert.ErrorIs(t, err, domain.ErrOverflow)
	})

	t.Run("accepts the maximum representable value", func(t *testing.T) {
		max := decimal.New(math.MaxInt64, -4)
		a, err := domain.AmountFromDecimal(max)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxAmount, a)
	})
}

func TestAmountArithmetic(t *testing.T) {
	t.Run("add is checked against overflow", func(t *testing.T) {
		sum, err := domain.Amount(30000).Add(domain.Amount(25000))
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(55000), sum)

		_, err = domain.MaxAmount.Add(1)
		assert.ErrorIs(t, err, domain.ErrOverflow)
	})

	t.Run("compares scaled values", func(t *testing.T) {
		assert.True(t, domain.Amount(100).GreaterOrEqual(100))
		assert.True(t, domain.Amount(101).GreaterOrEqual(100))
		assert.False(t, domain.Amount(99).GreaterOrEqual(100))
	})

	t.Run("sub is checked against underflow", func(t *testing.T) {
		diff, err := domain.Amount(30000).Sub(domain.Amount(25000))
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(5000), diff)

		_, err = domain.Amount(1).Sub(2)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})
}

func TestAmountString(t *testing.T) {
	t.Run("renders exactly four fractional digits", func(t *testing.T) {
		a, err := domain.ParseAmount("10")
		require.NoError(t, err)
		assert.Equal(t, "10.0000", a.String())

		a, err = domain.ParseAmount("1.5")
		require.NoError(t, err)
		assert.Equal(t, "1.5000", a.String())

		assert.Equal(t, "0.0000", domain.Amount(0).String())
		assert.Equal(t, "0.0001", domain.Amount(1).String())
	})

	t.Run("round trips losslessly", func(t *testing.T) {
		a, err := domain.ParseAmount("123.4567")
		require.NoError(t, err)

		back, err := domain.ParseAmount(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	})
}
