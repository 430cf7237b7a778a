package model

type DepositRecordDocument struct {
	Id                          string   `bson:"_id"`
	OperatorId                  string   `bson:"operator_id"`
	DomainId                    string   `bson:"domain_id"`
	Address                     string   `bson:"address"`
	PendingAmount               string   `bson:"pending_amount"`
	PendingStorageFeeDeposit    string   `bson:"pending_storage_fee_deposit"`
	PendingEffectiveDomainEpoch *uint64  `bson:"pending_effective_domain_epoch,omitempty"`
	Timestamp                   string   `bson:"timestamp"`
	BlockHeight                 uint64   `bson:"block_height"`
	ExtrinsicIds                []string `bson:"extrinsic_ids,omitempty"`
	EventIds                    []string `bson:"event_ids,omitempty"`
}

type WithdrawalRecordDocument struct {
	Id                            string   `bson:"_id"`
	OperatorId                    string   `bson:"operator_id"`
	DomainId                      string   `bson:"domain_id"`
	Address                       string   `bson:"address"`
	TotalWithdrawalAmount         string   `bson:"total_withdrawal_amount"`
	WithdrawalInSharesAmount      string   `bson:"withdrawal_in_shares_amount"`
	WithdrawalInSharesDomainEpoch *uint64  `bson:"withdrawal_in_shares_domain_epoch,omitempty"`
	TotalStorageFeeWithdrawal     string   `bson:"total_storage_fee_withdrawal"`
	WithdrawalInSharesUnlockBlock *uint64  `bson:"withdrawal_in_shares_unlock_block,omitempty"`
	Timestamp                     string   `bson:"timestamp"`
	BlockHeight                   uint64   `bson:"block_height"`
	ExtrinsicIds                  []string `bson:"extrinsic_ids,omitempty"`
	EventIds                      []string `bson:"event_ids,omitempty"`
}
