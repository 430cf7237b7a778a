package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/autonomys/staking-portal-api/internal/db/model"
)

// SaveUnprocessableMessage saves a message body that could not be processed
// into the database for manual inspection.
func (db *Database) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	unprocessableMsgClient := db.collection(model.UnprocessableMsgCollection)
	document := model.UnprocessableMessageDocument{
		MessageBody: messageBody,
		Receipt:     receipt,
	}
	_, err := unprocessableMsgClient.InsertOne(ctx, document)
	return err
}

func (db *Database) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	client := db.collection(model.UnprocessableMsgCollection)

	cursor, err := client.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []model.UnprocessableMessageDocument
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (db *Database) DeleteUnprocessableMessage(ctx context.Context, receipt string) error {
	client := db.collection(model.UnprocessableMsgCollection)
	_, err := client.DeleteOne(ctx, bson.M{"receipt": receipt})
	return err
}
