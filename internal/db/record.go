package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonomys/staking-portal-api/internal/db/model"
)

func (db *Database) SaveDepositRecord(ctx context.Context, record *model.DepositRecordDocument) error {
	client := db.collection(model.DepositRecordCollection)
	if _, err := client.InsertOne(ctx, record); err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     record.Id,
						Message: "deposit record already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) SaveWithdrawalRecord(ctx context.Context, record *model.WithdrawalRecordDocument) error {
	client := db.collection(model.WithdrawalRecordCollection)
	if _, err := client.InsertOne(ctx, record); err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     record.Id,
						Message: "withdrawal record already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) FindDepositRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) ([]model.DepositRecordDocument, int64, error) {
	client := db.collection(model.DepositRecordCollection)
	filter := recordFilter(address, operatorId)
	limit = db.capLimit(limit)

	total, err := client.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "block_height", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []model.DepositRecordDocument
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (db *Database) FindWithdrawalRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) ([]model.WithdrawalRecordDocument, int64, error) {
	client := db.collection(model.WithdrawalRecordCollection)
	filter := recordFilter(address, operatorId)
	limit = db.capLimit(limit)

	total, err := client.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "block_height", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []model.WithdrawalRecordDocument
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (db *Database) capLimit(limit int64) int64 {
	if limit <= 0 || limit > db.cfg.MaxPaginationLimit {
		return db.cfg.MaxPaginationLimit
	}
	return limit
}

func recordFilter(address, operatorId string) bson.M {
	filter := bson.M{"address": address}
	if operatorId != "" {
		filter["operator_id"] = operatorId
	}
	return filter
}
