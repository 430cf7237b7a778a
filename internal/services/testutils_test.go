package services

import (
	"context"
	"os"
	"testing"

	"github.com/autonomys/staking-portal-api/internal/clients"
	"github.com/autonomys/staking-portal-api/internal/clients/indexer"
	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/db/model"
	"github.com/autonomys/staking-portal-api/internal/observability/metrics"
	"github.com/autonomys/staking-portal-api/internal/types"
)

func TestMain(m *testing.M) {
	// Bind the metrics listener to an ephemeral port so counters used by the
	// service layer are registered.
	metrics.Init(0)
	os.Exit(m.Run())
}

type mockIndexer struct {
	operators         func(ctx context.Context) ([]types.Operator, *types.Error)
	returnWindows     func(ctx context.Context, operatorId string) (*types.ReturnDetailsWindows, *types.Error)
	nominatorCount    func(ctx context.Context, operatorId string) (int64, *types.Error)
	positions         func(ctx context.Context, address string) ([]types.Position, *types.Error)
	deposits          func(ctx context.Context, address, operatorId string, limit, offset int64) (*indexer.RecordPage[types.DepositRecord], *types.Error)
	withdrawals       func(ctx context.Context, address, operatorId string, limit, offset int64) (*indexer.RecordPage[types.WithdrawalRecord], *types.Error)
	sharePrices       func(ctx context.Context, operatorId, domainId string, epochs []uint64) ([]types.SharePrice, *types.Error)
	latestSharePrices func(ctx context.Context, operatorId string, limit int64) ([]types.SharePrice, *types.Error)
}

func (m *mockIndexer) GetOperators(ctx context.Context) ([]types.Operator, *types.Error) {
	if m.operators == nil {
		return nil, nil
	}
	return m.operators(ctx)
}

func (m *mockIndexer) GetOperatorReturnWindows(ctx context.Context, operatorId string) (*types.ReturnDetailsWindows, *types.Error) {
	if m.returnWindows == nil {
		return nil, nil
	}
	return m.returnWindows(ctx, operatorId)
}

func (m *mockIndexer) GetNominatorCount(ctx context.Context, operatorId string) (int64, *types.Error) {
	if m.nominatorCount == nil {
		return 0, nil
	}
	return m.nominatorCount(ctx, operatorId)
}

func (m *mockIndexer) GetPositionsByAddress(ctx context.Context, address string) ([]types.Position, *types.Error) {
	if m.positions == nil {
		return nil, nil
	}
	return m.positions(ctx, address)
}

func (m *mockIndexer) GetDepositsByOperator(
	ctx context.Context, address, operatorId string, limit, offset int64,
) (*indexer.RecordPage[types.DepositRecord], *types.Error) {
	if m.deposits == nil {
		return &indexer.RecordPage[types.DepositRecord]{}, nil
	}
	return m.deposits(ctx, address, operatorId, limit, offset)
}

func (m *mockIndexer) GetWithdrawalsByOperator(
	ctx context.Context, address, operatorId string, limit, offset int64,
) (*indexer.RecordPage[types.WithdrawalRecord], *types.Error) {
	if m.withdrawals == nil {
		return &indexer.RecordPage[types.WithdrawalRecord]{}, nil
	}
	return m.withdrawals(ctx, address, operatorId, limit, offset)
}

func (m *mockIndexer) GetSharePricesByEpochs(
	ctx context.Context, operatorId, domainId string, epochs []uint64,
) ([]types.SharePrice, *types.Error) {
	if m.sharePrices == nil {
		return nil, nil
	}
	return m.sharePrices(ctx, operatorId, domainId, epochs)
}

func (m *mockIndexer) GetLatestSharePrices(ctx context.Context, operatorId string, limit int64) ([]types.SharePrice, *types.Error) {
	if m.latestSharePrices == nil {
		return nil, nil
	}
	return m.latestSharePrices(ctx, operatorId, limit)
}

type mockChain struct {
	epoch func(ctx context.Context, domainId string) (uint64, *types.Error)
	block func(ctx context.Context, domainId string) (uint64, *types.Error)
}

func (m *mockChain) GetCurrentDomainEpochIndex(ctx context.Context, domainId string) (uint64, *types.Error) {
	if m.epoch == nil {
		return 0, types.NewInternalServiceError(errNotConfigured)
	}
	return m.epoch(ctx, domainId)
}

func (m *mockChain) GetCurrentDomainBlockNumber(ctx context.Context, domainId string) (uint64, *types.Error) {
	if m.block == nil {
		return 0, types.NewInternalServiceError(errNotConfigured)
	}
	return m.block(ctx, domainId)
}

var errNotConfigured = &notConfiguredError{}

type notConfiguredError struct{}

func (e *notConfiguredError) Error() string { return "not configured in test" }

type mockDB struct {
	sharePrices           map[uint64]model.SharePriceDocument
	savedSharePrices      []model.SharePriceDocument
	operatorSnapshots     []model.OperatorSnapshotDocument
	savedSnapshots        []model.OperatorSnapshotDocument
	depositRecords        []model.DepositRecordDocument
	withdrawalRecords     []model.WithdrawalRecordDocument
	unprocessableMessages []model.UnprocessableMessageDocument
}

func newMockDB() *mockDB {
	return &mockDB{sharePrices: make(map[uint64]model.SharePriceDocument)}
}

func (m *mockDB) Ping(ctx context.Context) error { return nil }

func (m *mockDB) SaveSharePrices(ctx context.Context, prices []model.SharePriceDocument) error {
	m.savedSharePrices = append(m.savedSharePrices, prices...)
	for _, price := range prices {
		m.sharePrices[price.EpochIndex] = price
	}
	return nil
}

func (m *mockDB) FindSharePricesByEpochs(
	ctx context.Context, operatorId, domainId string, epochs []uint64,
) ([]model.SharePriceDocument, error) {
	var found []model.SharePriceDocument
	for _, epoch := range epochs {
		if price, ok := m.sharePrices[epoch]; ok {
			found = append(found, price)
		}
	}
	return found, nil
}

func (m *mockDB) SaveOperatorSnapshots(ctx context.Context, snapshots []model.OperatorSnapshotDocument) error {
	m.savedSnapshots = append(m.savedSnapshots, snapshots...)
	return nil
}

func (m *mockDB) FindOperatorSnapshots(ctx context.Context) ([]model.OperatorSnapshotDocument, error) {
	return m.operatorSnapshots, nil
}

func (m *mockDB) SaveDepositRecord(ctx context.Context, record *model.DepositRecordDocument) error {
	m.depositRecords = append(m.depositRecords, *record)
	return nil
}

func (m *mockDB) SaveWithdrawalRecord(ctx context.Context, record *model.WithdrawalRecordDocument) error {
	m.withdrawalRecords = append(m.withdrawalRecords, *record)
	return nil
}

func (m *mockDB) FindDepositRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) ([]model.DepositRecordDocument, int64, error) {
	return m.depositRecords, int64(len(m.depositRecords)), nil
}

func (m *mockDB) FindWithdrawalRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) ([]model.WithdrawalRecordDocument, int64, error) {
	return m.withdrawalRecords, int64(len(m.withdrawalRecords)), nil
}

func (m *mockDB) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	m.unprocessableMessages = append(m.unprocessableMessages, model.UnprocessableMessageDocument{
		MessageBody: messageBody,
		Receipt:     receipt,
	})
	return nil
}

func (m *mockDB) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	return m.unprocessableMessages, nil
}

func (m *mockDB) DeleteUnprocessableMessage(ctx context.Context, receipt string) error {
	kept := m.unprocessableMessages[:0]
	for _, msg := range m.unprocessableMessages {
		if msg.Receipt != receipt {
			kept = append(kept, msg)
		}
	}
	m.unprocessableMessages = kept
	return nil
}

func newTestServices(db *mockDB, idx *mockIndexer, chain *mockChain) *Services {
	return &Services{
		DbClient: db,
		Clients:  &clients.Clients{Indexer: idx, Chain: chain},
		cfg: &config.Config{
			Db: config.DbConfig{MaxPaginationLimit: 50},
		},
	}
}
