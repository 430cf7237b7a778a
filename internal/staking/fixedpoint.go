package staking

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// SharePriceDecimals is the fixed-point scale shared by share prices and
// minor-unit token amounts on the chain.
const SharePriceDecimals = 18

// ErrInvalidNumericInput is returned when a numeric string handed to the
// fixed-point conversion is malformed. It is never coerced to zero.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

var sharePriceScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(SharePriceDecimals), nil)

// parseUint parses a non-negative integer string of arbitrary length.
// Only plain base-10 digit strings are accepted; signs, spaces and exponents
// are malformed input.
func parseUint(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidNumericInput)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidNumericInput, s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumericInput, s)
	}
	return n, nil
}

// MultiplySharesBySharePrice converts a share count into a minor-unit token
// amount using a fixed-point share price scaled by 10^18:
//
//	amount = floor(shares * sharePrice / 10^18)
//
// All arithmetic is arbitrary-precision integer math; share counts and prices
// routinely exceed the float64 safe-integer range.
func MultiplySharesBySharePrice(shares, sharePrice string) (string, error) {
	s, err := parseUint(shares)
	if err != nil {
		return "", err
	}
	p, err := parseUint(sharePrice)
	if err != nil {
		return "", err
	}
	amount := new(big.Int).Mul(s, p)
	amount.Quo(amount, sharePriceScale)
	return amount.String(), nil
}

// AmountToDecimal converts a minor-unit integer string into a display-ready
// decimal token amount.
func AmountToDecimal(amount string) (decimal.Decimal, error) {
	n, err := parseUint(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(n, -SharePriceDecimals), nil
}

// DecimalToAmount converts a display decimal back into a minor-unit integer
// string, flooring any precision beyond 18 places.
func DecimalToAmount(d decimal.Decimal) string {
	return d.Shift(SharePriceDecimals).Floor().BigInt().String()
}
