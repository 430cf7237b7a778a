package client

type EventType int

const (
	StakingDepositEventType    EventType = 1
	StakingWithdrawalEventType EventType = 2
)

// StakingDepositEvent is emitted by the chain event processor when a nominator
// deposit is included in a block.
type StakingDepositEvent struct {
	EventType                   EventType `json:"event_type"`
	Id                          string    `json:"id"`
	OperatorId                  string    `json:"operator_id"`
	DomainId                    string    `json:"domain_id"`
	Address                     string    `json:"address"`
	PendingAmount               string    `json:"pending_amount"`
	PendingStorageFeeDeposit    string    `json:"pending_storage_fee_deposit"`
	PendingEffectiveDomainEpoch *uint64   `json:"pending_effective_domain_epoch,omitempty"`
	Timestamp                   string    `json:"timestamp"`
	BlockHeight                 uint64    `json:"block_height"`
	ExtrinsicIds                []string  `json:"extrinsic_ids,omitempty"`
	EventIds                    []string  `json:"event_ids,omitempty"`
}

// StakingWithdrawalEvent is emitted when a withdrawal request is included in
// a block. Either the direct amount or the share-denominated fields are set.
type StakingWithdrawalEvent struct {
	EventType                     EventType `json:"event_type"`
	Id                            string    `json:"id"`
	OperatorId                    string    `json:"operator_id"`
	DomainId                      string    `json:"domain_id"`
	Address                       string    `json:"address"`
	TotalWithdrawalAmount         string    `json:"total_withdrawal_amount"`
	WithdrawalInSharesAmount      string    `json:"withdrawal_in_shares_amount"`
	WithdrawalInSharesDomainEpoch *uint64   `json:"withdrawal_in_shares_domain_epoch,omitempty"`
	TotalStorageFeeWithdrawal     string    `json:"total_storage_fee_withdrawal"`
	WithdrawalInSharesUnlockBlock *uint64   `json:"withdrawal_in_shares_unlock_block,omitempty"`
	Timestamp                     string    `json:"timestamp"`
	BlockHeight                   uint64    `json:"block_height"`
	ExtrinsicIds                  []string  `json:"extrinsic_ids,omitempty"`
	EventIds                      []string  `json:"event_ids,omitempty"`
}
