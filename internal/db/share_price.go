package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonomys/staking-portal-api/internal/db/model"
)

func (db *Database) SaveSharePrices(ctx context.Context, prices []model.SharePriceDocument) error {
	if len(prices) == 0 {
		return nil
	}

	client := db.collection(model.SharePriceCollection)
	models := make([]mongo.WriteModel, 0, len(prices))
	for _, price := range prices {
		filter := bson.M{
			"operator_id": price.OperatorId,
			"domain_id":   price.DomainId,
			"epoch_index": price.EpochIndex,
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(filter).
			SetReplacement(price).
			SetUpsert(true))
	}

	_, err := client.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Concurrent resolvers may race on the same epoch.
		return nil
	}
	return err
}

func (db *Database) FindSharePricesByEpochs(
	ctx context.Context, operatorId, domainId string, epochs []uint64,
) ([]model.SharePriceDocument, error) {
	if len(epochs) == 0 {
		return nil, nil
	}

	client := db.collection(model.SharePriceCollection)
	filter := bson.M{
		"operator_id": operatorId,
		"domain_id":   domainId,
		"epoch_index": bson.M{"$in": epochs},
	}

	cursor, err := client.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prices []model.SharePriceDocument
	if err := cursor.All(ctx, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}
