package staking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplySharesBySharePrice(t *testing.T) {
	// 5 shares at a 1.5 share price, both scaled by 1e18
	amount, err := MultiplySharesBySharePrice("5000000000000000000", "1500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "7500000000000000000", amount, "expected 7.5 tokens in minor units")

	// price of exactly 1 is the identity
	amount, err = MultiplySharesBySharePrice("123456789", "1000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "123456789", amount)

	// zero shares
	amount, err = MultiplySharesBySharePrice("0", "1500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "0", amount)
}

func TestMultiplySharesBySharePriceExceedsFloat64Range(t *testing.T) {
	// 10^30 shares, well past 2^53, at price 2.0
	amount, err := MultiplySharesBySharePrice("1000000000000000000000000000000", "2000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000000000000000", amount, "no precision loss for large share counts")
}

func TestMultiplySharesBySharePriceFloors(t *testing.T) {
	// 3 shares at price 1/3 (0.333...e18): floor(3 * 333333333333333333 / 1e18) = 0.999... floored
	amount, err := MultiplySharesBySharePrice("3", "333333333333333333")
	require.NoError(t, err)
	assert.Equal(t, "0", amount, "sub-unit remainders are floored, not rounded")
}

func TestMultiplySharesBySharePriceRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "-1", "1.5", "1e18", " 42", "abc", "+1"} {
		_, err := MultiplySharesBySharePrice(input, "1000000000000000000")
		assert.ErrorIs(t, err, ErrInvalidNumericInput, "shares input %q should be rejected", input)

		_, err = MultiplySharesBySharePrice("1000000000000000000", input)
		assert.ErrorIs(t, err, ErrInvalidNumericInput, "price input %q should be rejected", input)
	}
}

func TestAmountToDecimal(t *testing.T) {
	d, err := AmountToDecimal("7500000000000000000")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("7.5")), "got %s", d)

	_, err = AmountToDecimal("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidNumericInput)
}

func TestDecimalToAmountRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("12.345678901234567891")
	amount := DecimalToAmount(d)
	assert.Equal(t, "12345678901234567891", amount)

	// precision beyond 18 places is floored
	d = decimal.RequireFromString("1.0000000000000000009")
	assert.Equal(t, "1000000000000000000", DecimalToAmount(d))
}
