package db

import (
	"context"

	"github.com/autonomys/staking-portal-api/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// SaveSharePrices upserts resolved share prices; prices are immutable
	// per (operator, domain, epoch) so re-saving is a no-op.
	SaveSharePrices(ctx context.Context, prices []model.SharePriceDocument) error
	FindSharePricesByEpochs(
		ctx context.Context, operatorId, domainId string, epochs []uint64,
	) ([]model.SharePriceDocument, error)
	SaveOperatorSnapshots(ctx context.Context, snapshots []model.OperatorSnapshotDocument) error
	FindOperatorSnapshots(ctx context.Context) ([]model.OperatorSnapshotDocument, error)
	SaveDepositRecord(ctx context.Context, record *model.DepositRecordDocument) error
	SaveWithdrawalRecord(ctx context.Context, record *model.WithdrawalRecordDocument) error
	FindDepositRecords(
		ctx context.Context, address, operatorId string, limit, offset int64,
	) ([]model.DepositRecordDocument, int64, error)
	FindWithdrawalRecords(
		ctx context.Context, address, operatorId string, limit, offset int64,
	) ([]model.WithdrawalRecordDocument, int64, error)
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt string) error
}
