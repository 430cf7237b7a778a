package types

// DepositRecord is a raw deposit row from the indexer. Amount fields are
// integer strings in minor units. PendingEffectiveDomainEpoch is nil for
// historical deposits that were already applied.
type DepositRecord struct {
	Id                          string   `json:"id"`
	OperatorId                  string   `json:"operator_id"`
	DomainId                    string   `json:"domain_id"`
	Address                     string   `json:"address"`
	PendingAmount               string   `json:"pending_amount"`
	PendingStorageFeeDeposit    string   `json:"pending_storage_fee_deposit"`
	PendingEffectiveDomainEpoch *uint64  `json:"pending_effective_domain_epoch,omitempty"`
	Timestamp                   string   `json:"timestamp"`
	BlockHeight                 uint64   `json:"block_height"`
	ExtrinsicIds                []string `json:"extrinsic_ids,omitempty"`
	EventIds                    []string `json:"event_ids,omitempty"`
}

// WithdrawalRecord is a raw withdrawal row from the indexer. The amount is
// either given directly in TotalWithdrawalAmount or expressed as shares to be
// converted via the share price recorded at WithdrawalInSharesDomainEpoch.
// A nil unlock block means the withdrawal was already claimed upstream.
type WithdrawalRecord struct {
	Id                            string   `json:"id"`
	OperatorId                    string   `json:"operator_id"`
	DomainId                      string   `json:"domain_id"`
	Address                       string   `json:"address"`
	TotalWithdrawalAmount         string   `json:"total_withdrawal_amount"`
	WithdrawalInSharesAmount      string   `json:"withdrawal_in_shares_amount"`
	WithdrawalInSharesDomainEpoch *uint64  `json:"withdrawal_in_shares_domain_epoch,omitempty"`
	TotalStorageFeeWithdrawal     string   `json:"total_storage_fee_withdrawal"`
	WithdrawalInSharesUnlockBlock *uint64  `json:"withdrawal_in_shares_unlock_block,omitempty"`
	Timestamp                     string   `json:"timestamp"`
	BlockHeight                   uint64   `json:"block_height"`
	ExtrinsicIds                  []string `json:"extrinsic_ids,omitempty"`
	EventIds                      []string `json:"event_ids,omitempty"`
}

// SharePrice maps shares to token amounts for one historical epoch. The price
// is a fixed-point scalar scaled by 10^18, immutable once recorded.
type SharePrice struct {
	EpochIndex uint64 `json:"epoch_index"`
	Price      string `json:"share_price"`
}

type TransactionStatus string

const (
	TxPending  TransactionStatus = "pending"
	TxComplete TransactionStatus = "complete"
)

func (s TransactionStatus) ToString() string {
	return string(s)
}
