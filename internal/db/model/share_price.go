package model

type SharePriceDocument struct {
	OperatorId string `bson:"operator_id"`
	DomainId   string `bson:"domain_id"`
	EpochIndex uint64 `bson:"epoch_index"`
	Price      string `bson:"share_price"`
}
