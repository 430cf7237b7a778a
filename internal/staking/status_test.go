package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autonomys/staking-portal-api/internal/types"
)

func uintPtr(v uint64) *uint64 {
	return &v
}

func TestCheckWithdrawalUnlockStatusBoundary(t *testing.T) {
	status := CheckWithdrawalUnlockStatus(1000, 1000)
	assert.True(t, status.IsUnlocked, "unlock block is inclusive")
	assert.Equal(t, uint64(0), status.BlocksRemaining)

	status = CheckWithdrawalUnlockStatus(1000, 999)
	assert.False(t, status.IsUnlocked)
	assert.Equal(t, uint64(1), status.BlocksRemaining)

	status = CheckWithdrawalUnlockStatus(1000, 1500)
	assert.True(t, status.IsUnlocked)
	assert.Equal(t, uint64(0), status.BlocksRemaining, "blocks remaining never goes negative")
}

func TestDeriveDepositStatus(t *testing.T) {
	rec := types.DepositRecord{PendingEffectiveDomainEpoch: uintPtr(10)}

	assert.Equal(t, types.TxComplete, DeriveDepositStatus(rec, uintPtr(10)), "effective epoch reached")
	assert.Equal(t, types.TxComplete, DeriveDepositStatus(rec, uintPtr(11)))
	assert.Equal(t, types.TxPending, DeriveDepositStatus(rec, uintPtr(9)))
}

func TestDeriveDepositStatusWithoutEffectiveEpoch(t *testing.T) {
	rec := types.DepositRecord{}

	// no effective epoch recorded: historical, already applied
	assert.Equal(t, types.TxComplete, DeriveDepositStatus(rec, uintPtr(5)))
	assert.Equal(t, types.TxComplete, DeriveDepositStatus(rec, nil))
}

func TestDeriveDepositStatusUnknownCurrentEpoch(t *testing.T) {
	rec := types.DepositRecord{PendingEffectiveDomainEpoch: uintPtr(10)}

	// unknown current epoch must not be assumed past the target epoch
	assert.Equal(t, types.TxPending, DeriveDepositStatus(rec, nil))
}

func TestDeriveDepositStatusIsIdempotent(t *testing.T) {
	rec := types.DepositRecord{PendingEffectiveDomainEpoch: uintPtr(10)}
	first := DeriveDepositStatus(rec, uintPtr(10))
	second := DeriveDepositStatus(rec, uintPtr(10))
	assert.Equal(t, first, second)
}

func TestDeriveWithdrawalStatus(t *testing.T) {
	rec := types.WithdrawalRecord{WithdrawalInSharesUnlockBlock: uintPtr(1000)}

	unlocked := &WithdrawalUnlockStatus{IsUnlocked: true}
	locked := &WithdrawalUnlockStatus{IsUnlocked: false, BlocksRemaining: 42}

	assert.Equal(t, types.TxComplete, DeriveWithdrawalStatus(rec, unlocked))
	assert.Equal(t, types.TxPending, DeriveWithdrawalStatus(rec, locked))
	assert.Equal(t, types.TxPending, DeriveWithdrawalStatus(rec, nil), "unresolved unlock status stays pending")
}

func TestDeriveWithdrawalStatusWithoutUnlockBlock(t *testing.T) {
	rec := types.WithdrawalRecord{}
	assert.Equal(t, types.TxComplete, DeriveWithdrawalStatus(rec, nil), "no unlock block means already claimed upstream")
}
