package staking

import (
	"github.com/autonomys/staking-portal-api/internal/types"
)

// WithdrawalUnlockStatus reports how far a pending withdrawal is from its
// unlock block.
type WithdrawalUnlockStatus struct {
	IsUnlocked      bool   `json:"is_unlocked"`
	BlocksRemaining uint64 `json:"blocks_remaining"`
}

// CheckWithdrawalUnlockStatus compares a withdrawal's unlock block against
// the current domain block height. The boundary is inclusive: a withdrawal
// unlocks at exactly its unlock block.
func CheckWithdrawalUnlockStatus(unlockBlock, currentBlock uint64) WithdrawalUnlockStatus {
	if currentBlock >= unlockBlock {
		return WithdrawalUnlockStatus{IsUnlocked: true}
	}
	return WithdrawalUnlockStatus{
		IsUnlocked:      false,
		BlocksRemaining: unlockBlock - currentBlock,
	}
}

// DeriveDepositStatus classifies a deposit record as pending or complete.
// Status is recomputed from the record and current chain state on every read,
// so the same inputs always yield the same answer.
//
// A record without an effective epoch is historical and therefore complete.
// When the current epoch is unknown, a recorded effective epoch is treated as
// not yet reached: report pending rather than guessing complete.
func DeriveDepositStatus(rec types.DepositRecord, currentEpoch *uint64) types.TransactionStatus {
	if rec.PendingEffectiveDomainEpoch == nil {
		return types.TxComplete
	}
	if currentEpoch == nil {
		return types.TxPending
	}
	if *rec.PendingEffectiveDomainEpoch > *currentEpoch {
		return types.TxPending
	}
	return types.TxComplete
}

// DeriveWithdrawalStatus classifies a withdrawal record as pending or
// complete. A record without an unlock block was already claimed or resolved
// upstream; otherwise completion requires a resolved unlock status saying the
// unlock block has passed.
func DeriveWithdrawalStatus(rec types.WithdrawalRecord, unlock *WithdrawalUnlockStatus) types.TransactionStatus {
	if rec.WithdrawalInSharesUnlockBlock == nil {
		return types.TxComplete
	}
	if unlock != nil && unlock.IsUnlocked {
		return types.TxComplete
	}
	return types.TxPending
}
