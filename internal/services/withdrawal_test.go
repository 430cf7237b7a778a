package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func previewFixture(minStake string, positions []types.Position) (*mockIndexer, *mockChain) {
	idx := &mockIndexer{
		operators: func(ctx context.Context) ([]types.Operator, *types.Error) {
			return []types.Operator{{
				Id: "op1", Name: "Operator One", DomainId: "0",
				OwnerAccount:          "owner-account",
				MinimumNominatorStake: dec(minStake),
				Status:                types.OperatorActive,
				TotalStaked:           dec("1000"),
			}}, nil
		},
		positions: func(ctx context.Context, address string) ([]types.Position, *types.Error) {
			return positions, nil
		},
	}
	return idx, &mockChain{}
}

func TestPreviewWithdrawalPartialSplit(t *testing.T) {
	idx, chain := previewFixture("10", []types.Position{{
		OperatorId: "op1", Address: "alice",
		ActiveStake: dec("100"), StorageFeeDeposit: dec("20"),
	}})

	s := newTestServices(newMockDB(), idx, chain)
	result, err := s.PreviewWithdrawal(context.Background(), "op1", "alice", staking.WithdrawPartial, dec("60"))
	require.Nil(t, err)
	require.True(t, result.Validation.IsValid)
	assert.False(t, result.Validation.WillWithdrawAll)

	assert.Equal(t, "60", result.Preview.GrossWithdrawalAmount.String())
	assert.Equal(t, "50", result.Preview.NetStakeWithdrawal.String())
	assert.Equal(t, "10", result.Preview.StorageFeeRefund.String())
	assert.Equal(t, int64(50), result.Preview.Percentage)
}

func TestPreviewWithdrawalForcedFull(t *testing.T) {
	idx, chain := previewFixture("30", []types.Position{{
		OperatorId: "op1", Address: "alice",
		ActiveStake: dec("100"), StorageFeeDeposit: dec("20"),
	}})

	s := newTestServices(newMockDB(), idx, chain)
	// 120 - 95 = 25 remaining, below the 30 minimum: forced full withdrawal.
	result, err := s.PreviewWithdrawal(context.Background(), "op1", "alice", staking.WithdrawPartial, dec("95"))
	require.Nil(t, err)
	require.True(t, result.Validation.IsValid)
	assert.True(t, result.Validation.WillWithdrawAll)
	assert.NotEmpty(t, result.Validation.Warning)

	assert.Equal(t, "120", result.Preview.GrossWithdrawalAmount.String())
	assert.Equal(t, "100", result.Preview.NetStakeWithdrawal.String())
	assert.Equal(t, "20", result.Preview.StorageFeeRefund.String())
	assert.Equal(t, int64(100), result.Preview.Percentage)
}

func TestPreviewWithdrawalOwnerExempt(t *testing.T) {
	idx, chain := previewFixture("30", []types.Position{{
		OperatorId: "op1", Address: "owner-account",
		ActiveStake: dec("100"), StorageFeeDeposit: dec("20"),
	}})

	s := newTestServices(newMockDB(), idx, chain)
	// Same request that forces a nominator into a full withdrawal.
	result, err := s.PreviewWithdrawal(context.Background(), "op1", "owner-account", staking.WithdrawPartial, dec("95"))
	require.Nil(t, err)
	require.True(t, result.Validation.IsValid)
	assert.False(t, result.Validation.WillWithdrawAll)
	assert.Empty(t, result.Validation.Warning)
	assert.Equal(t, "95", result.Preview.GrossWithdrawalAmount.String())
}

func TestPreviewWithdrawalAllMethod(t *testing.T) {
	idx, chain := previewFixture("10", []types.Position{{
		OperatorId: "op1", Address: "alice",
		ActiveStake: dec("100"), StorageFeeDeposit: dec("20"),
	}})

	s := newTestServices(newMockDB(), idx, chain)
	result, err := s.PreviewWithdrawal(context.Background(), "op1", "alice", staking.WithdrawAll, decimal.Zero)
	require.Nil(t, err)
	require.True(t, result.Validation.IsValid)
	assert.True(t, result.Validation.WillWithdrawAll)
	assert.Equal(t, "120", result.Preview.GrossWithdrawalAmount.String())
	assert.Equal(t, int64(100), result.Preview.Percentage)
}

func TestPreviewWithdrawalRejectsNonPositive(t *testing.T) {
	idx, chain := previewFixture("10", []types.Position{{
		OperatorId: "op1", Address: "alice",
		ActiveStake: dec("100"), StorageFeeDeposit: dec("20"),
	}})

	s := newTestServices(newMockDB(), idx, chain)
	result, err := s.PreviewWithdrawal(context.Background(), "op1", "alice", staking.WithdrawPartial, dec("0"))
	require.Nil(t, err)
	assert.False(t, result.Validation.IsValid)
	assert.NotEmpty(t, result.Validation.Warning)
	assert.True(t, result.Preview.GrossWithdrawalAmount.IsZero())
}

func TestPreviewWithdrawalUnknownOperator(t *testing.T) {
	idx, chain := previewFixture("10", nil)

	s := newTestServices(newMockDB(), idx, chain)
	result, err := s.PreviewWithdrawal(context.Background(), "no-such-operator", "alice", staking.WithdrawPartial, dec("5"))
	require.Nil(t, err)
	assert.False(t, result.Validation.IsValid)
	assert.Equal(t, "Operator not found", result.Validation.Warning)
}

func TestPreviewWithdrawalNoPosition(t *testing.T) {
	idx, chain := previewFixture("10", nil)

	s := newTestServices(newMockDB(), idx, chain)
	result, err := s.PreviewWithdrawal(context.Background(), "op1", "alice", staking.WithdrawPartial, dec("5"))
	require.Nil(t, err)
	// Withdrawing from an empty position collapses to a full withdrawal of
	// nothing; the verdict stays structured rather than erroring.
	require.True(t, result.Validation.IsValid)
	assert.True(t, result.Validation.WillWithdrawAll)
}
