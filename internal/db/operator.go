package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonomys/staking-portal-api/internal/db/model"
)

func (db *Database) SaveOperatorSnapshots(
	ctx context.Context, snapshots []model.OperatorSnapshotDocument,
) error {
	if len(snapshots) == 0 {
		return nil
	}

	client := db.collection(model.OperatorSnapshotCollection)
	models := make([]mongo.WriteModel, 0, len(snapshots))
	for _, snapshot := range snapshots {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": snapshot.Id}).
			SetReplacement(snapshot).
			SetUpsert(true))
	}

	_, err := client.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

func (db *Database) FindOperatorSnapshots(ctx context.Context) ([]model.OperatorSnapshotDocument, error) {
	client := db.collection(model.OperatorSnapshotCollection)

	cursor, err := client.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []model.OperatorSnapshotDocument
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
