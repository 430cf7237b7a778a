package types

import (
	"github.com/shopspring/decimal"
)

// PendingDeposit is a deposit submitted but not yet converted to shares,
// awaiting the epoch transition at EffectiveEpoch.
type PendingDeposit struct {
	Amount         decimal.Decimal `json:"amount"`
	EffectiveEpoch uint64          `json:"effective_epoch"`
}

// PendingWithdrawal is a withdrawal requested but still inside the unlock
// period. Once requested it is owed but no longer staked, so it does not
// count towards the position value.
type PendingWithdrawal struct {
	GrossWithdrawalAmount decimal.Decimal `json:"gross_withdrawal_amount"`
	UnlockBlock           uint64          `json:"unlock_block"`
}

// Position is a user's stake with a single operator.
type Position struct {
	OperatorId         string              `json:"operator_id"`
	Address            string              `json:"address"`
	ActiveStake        decimal.Decimal     `json:"active_stake"`
	StorageFeeDeposit  decimal.Decimal     `json:"storage_fee_deposit"`
	PendingDeposit     *PendingDeposit     `json:"pending_deposit,omitempty"`
	PendingWithdrawals []PendingWithdrawal `json:"pending_withdrawals,omitempty"`
}
