package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonomys/staking-portal-api/internal/config"
)

const (
	SharePriceCollection       = "share_prices"
	OperatorSnapshotCollection = "operator_snapshots"
	DepositRecordCollection    = "deposit_records"
	WithdrawalRecordCollection = "withdrawal_records"
	UnprocessableMsgCollection = "unprocessable_messages"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	// Share prices are immutable per (operator, domain, epoch); the unique
	// index makes re-saving a fetched price a no-op.
	SharePriceCollection: {
		{Indexes: map[string]int{"operator_id": 1, "domain_id": 1, "epoch_index": 1}, Unique: true},
	},
	OperatorSnapshotCollection: {{Indexes: map[string]int{}}},
	DepositRecordCollection: {
		{Indexes: map[string]int{"address": 1, "operator_id": 1, "block_height": -1}, Unique: false},
	},
	WithdrawalRecordCollection: {
		{Indexes: map[string]int{"address": 1, "operator_id": 1, "block_height": -1}, Unique: false},
	},
	UnprocessableMsgCollection: {{Indexes: map[string]int{}}},
}

func Setup(ctx context.Context, cfg *config.Config) error {
	clientOps := options.Client().ApplyURI(cfg.Db.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	// Create a context with timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Access a database and create collections.
	database := client.Database(cfg.Db.DbName)

	// Create collections.
	for collection := range collections {
		createCollection(ctx, database, collection)
	}

	for name, idxs := range collections {
		for _, idx := range idxs {
			createIndex(ctx, database, name, idx)
		}
	}

	log.Info().Msg("Collections and Indexes created successfully.")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) {
	// Create the collection; an existing collection is fine.
	if err := database.CreateCollection(ctx, collectionName); err != nil {
		log.Debug().Msg(fmt.Sprintf("Collection maybe already exists: %s, info: %s", collectionName, err))
		return
	}

	log.Debug().Msg("Collection created successfully: " + collectionName)
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) {
	if len(idx.Indexes) == 0 {
		return
	}

	indexKeys := bson.D{}
	for k, v := range idx.Indexes {
		indexKeys = append(indexKeys, bson.E{Key: k, Value: v})
	}

	index := mongo.IndexModel{
		Keys:    indexKeys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, index); err != nil {
		log.Debug().Msg(fmt.Sprintf("Failed to create index on collection '%s': %v", collectionName, err))
		return
	}

	log.Debug().Msg("Index created successfully on collection: " + collectionName)
}
