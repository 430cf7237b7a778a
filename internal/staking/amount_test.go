package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autonomys/staking-portal-api/internal/types"
)

func TestWithdrawalAmountOf(t *testing.T) {
	direct := types.WithdrawalRecord{TotalWithdrawalAmount: "5000000000000000000"}
	assert.Equal(t, DirectAmount{Value: "5000000000000000000"}, WithdrawalAmountOf(direct))

	shares := types.WithdrawalRecord{
		WithdrawalInSharesAmount:      "5000000000000000000",
		WithdrawalInSharesDomainEpoch: uintPtr(7),
	}
	assert.Equal(t, ShareDenominated{Shares: "5000000000000000000", Epoch: 7}, WithdrawalAmountOf(shares))

	// a direct amount takes precedence over shares
	both := types.WithdrawalRecord{
		TotalWithdrawalAmount:         "42",
		WithdrawalInSharesAmount:      "5000000000000000000",
		WithdrawalInSharesDomainEpoch: uintPtr(7),
	}
	assert.Equal(t, DirectAmount{Value: "42"}, WithdrawalAmountOf(both))

	// nothing recorded at all resolves to a direct zero
	assert.Equal(t, DirectAmount{Value: "0"}, WithdrawalAmountOf(types.WithdrawalRecord{}))
}

func TestResolveWithdrawalAmountFromShares(t *testing.T) {
	rec := types.WithdrawalRecord{
		WithdrawalInSharesAmount:      "5000000000000000000",
		WithdrawalInSharesDomainEpoch: uintPtr(7),
	}
	prices := map[uint64]string{7: "1500000000000000000"}

	amount, err := ResolveWithdrawalAmount(rec, prices)
	require.NoError(t, err)
	assert.Equal(t, "7500000000000000000", amount)
}

func TestResolveWithdrawalAmountMissingPriceIsUnresolvedNotZero(t *testing.T) {
	rec := types.WithdrawalRecord{
		WithdrawalInSharesAmount:      "5000000000000000000",
		WithdrawalInSharesDomainEpoch: uintPtr(7),
	}

	amount, err := ResolveWithdrawalAmount(rec, map[uint64]string{8: "1000000000000000000"})
	assert.ErrorIs(t, err, ErrUnresolvedAmount)
	assert.NotEqual(t, "0", amount, "a missing price must never fabricate a zero amount")
	assert.Empty(t, amount)

	_, err = ResolveWithdrawalAmount(rec, nil)
	assert.ErrorIs(t, err, ErrUnresolvedAmount)
}

func TestResolveWithdrawalAmountDirect(t *testing.T) {
	rec := types.WithdrawalRecord{TotalWithdrawalAmount: "123"}
	amount, err := ResolveWithdrawalAmount(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, "123", amount, "direct amounts bypass share conversion")
}

func TestResolveWithdrawalAmountPropagatesMalformedShares(t *testing.T) {
	rec := types.WithdrawalRecord{
		WithdrawalInSharesAmount:      "not-a-number",
		WithdrawalInSharesDomainEpoch: uintPtr(7),
	}
	_, err := ResolveWithdrawalAmount(rec, map[uint64]string{7: "1000000000000000000"})
	assert.ErrorIs(t, err, ErrInvalidNumericInput)
}
