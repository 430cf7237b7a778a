package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autonomys/staking-portal-api/internal/db"
	"github.com/autonomys/staking-portal-api/internal/db/model"
	queueClient "github.com/autonomys/staking-portal-api/internal/queue/client"
	"github.com/autonomys/staking-portal-api/internal/services"
)

type fakeDB struct {
	deposits    map[string]model.DepositRecordDocument
	withdrawals map[string]model.WithdrawalRecordDocument
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		deposits:    make(map[string]model.DepositRecordDocument),
		withdrawals: make(map[string]model.WithdrawalRecordDocument),
	}
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }

func (f *fakeDB) SaveSharePrices(ctx context.Context, prices []model.SharePriceDocument) error {
	return nil
}

func (f *fakeDB) FindSharePricesByEpochs(
	ctx context.Context, operatorId, domainId string, epochs []uint64,
) ([]model.SharePriceDocument, error) {
	return nil, nil
}

func (f *fakeDB) SaveOperatorSnapshots(ctx context.Context, snapshots []model.OperatorSnapshotDocument) error {
	return nil
}

func (f *fakeDB) FindOperatorSnapshots(ctx context.Context) ([]model.OperatorSnapshotDocument, error) {
	return nil, nil
}

func (f *fakeDB) SaveDepositRecord(ctx context.Context, record *model.DepositRecordDocument) error {
	if _, ok := f.deposits[record.Id]; ok {
		return &db.DuplicateKeyError{Key: record.Id, Message: "deposit record already exists"}
	}
	f.deposits[record.Id] = *record
	return nil
}

func (f *fakeDB) SaveWithdrawalRecord(ctx context.Context, record *model.WithdrawalRecordDocument) error {
	if _, ok := f.withdrawals[record.Id]; ok {
		return &db.DuplicateKeyError{Key: record.Id, Message: "withdrawal record already exists"}
	}
	f.withdrawals[record.Id] = *record
	return nil
}

func (f *fakeDB) FindDepositRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) ([]model.DepositRecordDocument, int64, error) {
	return nil, 0, nil
}

func (f *fakeDB) FindWithdrawalRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) ([]model.WithdrawalRecordDocument, int64, error) {
	return nil, 0, nil
}

func (f *fakeDB) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	return nil
}

func (f *fakeDB) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	return nil, nil
}

func (f *fakeDB) DeleteUnprocessableMessage(ctx context.Context, receipt string) error {
	return nil
}

func newTestHandler(fake *fakeDB) *QueueHandler {
	return NewQueueHandler(&services.Services{DbClient: fake})
}

func TestStakingDepositHandlerSavesRecord(t *testing.T) {
	fake := newFakeDB()
	handler := newTestHandler(fake)

	epoch := uint64(12)
	event := queueClient.StakingDepositEvent{
		EventType:                   queueClient.StakingDepositEventType,
		Id:                          "d1",
		OperatorId:                  "op1",
		DomainId:                    "0",
		Address:                     "alice",
		PendingAmount:               "1000000000000000000",
		PendingStorageFeeDeposit:    "200000000000000000",
		PendingEffectiveDomainEpoch: &epoch,
		BlockHeight:                 42,
	}
	body, jsonErr := json.Marshal(event)
	require.NoError(t, jsonErr)

	err := handler.StakingDepositHandler(context.Background(), string(body))
	require.NoError(t, err)

	saved, ok := fake.deposits["d1"]
	require.True(t, ok)
	assert.Equal(t, "op1", saved.OperatorId)
	assert.Equal(t, "1000000000000000000", saved.PendingAmount)
	require.NotNil(t, saved.PendingEffectiveDomainEpoch)
	assert.Equal(t, uint64(12), *saved.PendingEffectiveDomainEpoch)
}

func TestStakingDepositHandlerIdempotentOnDuplicate(t *testing.T) {
	fake := newFakeDB()
	handler := newTestHandler(fake)

	event := queueClient.StakingDepositEvent{
		EventType:  queueClient.StakingDepositEventType,
		Id:         "d1",
		OperatorId: "op1",
	}
	body, jsonErr := json.Marshal(event)
	require.NoError(t, jsonErr)

	require.NoError(t, handler.StakingDepositHandler(context.Background(), string(body)))
	// Duplicate delivery is acknowledged without error.
	require.NoError(t, handler.StakingDepositHandler(context.Background(), string(body)))
	assert.Len(t, fake.deposits, 1)
}

func TestStakingDepositHandlerRejectsBadPayload(t *testing.T) {
	handler := newTestHandler(newFakeDB())

	assert.Error(t, handler.StakingDepositHandler(context.Background(), "not json"))

	wrongType := queueClient.StakingDepositEvent{EventType: queueClient.StakingWithdrawalEventType, Id: "d1"}
	body, jsonErr := json.Marshal(wrongType)
	require.NoError(t, jsonErr)
	assert.Error(t, handler.StakingDepositHandler(context.Background(), string(body)))

	missingId := queueClient.StakingDepositEvent{EventType: queueClient.StakingDepositEventType}
	body, jsonErr = json.Marshal(missingId)
	require.NoError(t, jsonErr)
	assert.Error(t, handler.StakingDepositHandler(context.Background(), string(body)))
}

func TestStakingWithdrawalHandlerSavesRecord(t *testing.T) {
	fake := newFakeDB()
	handler := newTestHandler(fake)

	epoch := uint64(4)
	unlock := uint64(900)
	event := queueClient.StakingWithdrawalEvent{
		EventType:                     queueClient.StakingWithdrawalEventType,
		Id:                            "w1",
		OperatorId:                    "op1",
		DomainId:                      "0",
		Address:                       "alice",
		WithdrawalInSharesAmount:      "5000000000000000000",
		WithdrawalInSharesDomainEpoch: &epoch,
		TotalStorageFeeWithdrawal:     "1000000000000000000",
		WithdrawalInSharesUnlockBlock: &unlock,
	}
	body, jsonErr := json.Marshal(event)
	require.NoError(t, jsonErr)

	require.NoError(t, handler.StakingWithdrawalHandler(context.Background(), string(body)))

	saved, ok := fake.withdrawals["w1"]
	require.True(t, ok)
	assert.Equal(t, "5000000000000000000", saved.WithdrawalInSharesAmount)
	require.NotNil(t, saved.WithdrawalInSharesUnlockBlock)
	assert.Equal(t, uint64(900), *saved.WithdrawalInSharesUnlockBlock)
}

func TestStakingWithdrawalHandlerIdempotentOnDuplicate(t *testing.T) {
	fake := newFakeDB()
	handler := newTestHandler(fake)

	event := queueClient.StakingWithdrawalEvent{
		EventType:  queueClient.StakingWithdrawalEventType,
		Id:         "w1",
		OperatorId: "op1",
	}
	body, jsonErr := json.Marshal(event)
	require.NoError(t, jsonErr)

	require.NoError(t, handler.StakingWithdrawalHandler(context.Background(), string(body)))
	require.NoError(t, handler.StakingWithdrawalHandler(context.Background(), string(body)))
	assert.Len(t, fake.withdrawals, 1)
}
