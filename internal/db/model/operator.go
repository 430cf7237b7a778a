package model

import "time"

// OperatorSnapshotDocument is the last known operator state, kept so the
// operator list can still be served when the indexer is unreachable.
type OperatorSnapshotDocument struct {
	Id                    string    `bson:"_id"`
	Name                  string    `bson:"name"`
	DomainId              string    `bson:"domain_id"`
	DomainName            string    `bson:"domain_name"`
	OwnerAccount          string    `bson:"owner_account"`
	NominationTax         float64   `bson:"nomination_tax"`
	MinimumNominatorStake string    `bson:"minimum_nominator_stake"`
	Status                string    `bson:"status"`
	TotalStaked           string    `bson:"total_staked"`
	TotalStorageFund      string    `bson:"total_storage_fund,omitempty"`
	TotalPoolValue        string    `bson:"total_pool_value,omitempty"`
	UpdatedAt             time.Time `bson:"updated_at"`
}
