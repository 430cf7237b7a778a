package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/clients/indexer"
	"github.com/autonomys/staking-portal-api/internal/db/model"
	"github.com/autonomys/staking-portal-api/internal/observability/metrics"
	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

type DepositTransactionPublic struct {
	Id                string                  `json:"id"`
	OperatorId        string                  `json:"operator_id"`
	Address           string                  `json:"address"`
	Amount            decimal.Decimal         `json:"amount"`
	StorageFeeDeposit decimal.Decimal         `json:"storage_fee_deposit"`
	Status            types.TransactionStatus `json:"status"`
	Timestamp         string                  `json:"timestamp"`
	BlockHeight       uint64                  `json:"block_height"`
	ExtrinsicIds      []string                `json:"extrinsic_ids,omitempty"`
	EventIds          []string                `json:"event_ids,omitempty"`
}

// WithdrawalTransactionPublic carries a nil Amount with AmountUnresolved set
// when no share price is recorded for the withdrawal's epoch. A zero amount
// would be a lie; the UI shows these as unresolved.
type WithdrawalTransactionPublic struct {
	Id               string                  `json:"id"`
	OperatorId       string                  `json:"operator_id"`
	Address          string                  `json:"address"`
	Amount           *decimal.Decimal        `json:"amount,omitempty"`
	AmountUnresolved bool                    `json:"amount_unresolved,omitempty"`
	StorageFeeRefund decimal.Decimal         `json:"storage_fee_refund"`
	Status           types.TransactionStatus `json:"status"`
	UnlockBlock      *uint64                 `json:"unlock_block,omitempty"`
	IsUnlocked       bool                    `json:"is_unlocked"`
	BlocksRemaining  uint64                  `json:"blocks_remaining"`
	Timestamp        string                  `json:"timestamp"`
	BlockHeight      uint64                  `json:"block_height"`
	ExtrinsicIds     []string                `json:"extrinsic_ids,omitempty"`
	EventIds         []string                `json:"event_ids,omitempty"`
}

type TransactionsPublic struct {
	Deposits         []DepositTransactionPublic    `json:"deposits"`
	Withdrawals      []WithdrawalTransactionPublic `json:"withdrawals"`
	TotalDeposits    int64                         `json:"total_deposits"`
	TotalWithdrawals int64                         `json:"total_withdrawals"`
}

// GetTransactions returns the caller's deposit and withdrawal history with an
// operator, with statuses derived from current chain state and withdrawal
// amounts resolved from historical share prices. The chain snapshot is
// resolved once per request so every row in the page is judged against a
// single consistent view.
func (s *Services) GetTransactions(
	ctx context.Context, address, operatorId string, limit, offset int64,
) (*TransactionsPublic, *types.Error) {
	if limit <= 0 || limit > s.cfg.Db.MaxPaginationLimit {
		limit = s.cfg.Db.MaxPaginationLimit
	}

	deposits, withdrawals, err := s.fetchRecords(ctx, address, operatorId, limit, offset)
	if err != nil {
		return nil, err
	}

	domainId := domainIdOf(deposits.Rows, withdrawals.Rows)
	snapshot := s.resolveChainSnapshot(ctx, operatorId, domainId)
	snapshot.EpochToSharePrice = s.resolveSharePrices(ctx, operatorId, domainId, withdrawals.Rows)

	result := &TransactionsPublic{
		Deposits:         make([]DepositTransactionPublic, 0, len(deposits.Rows)),
		Withdrawals:      make([]WithdrawalTransactionPublic, 0, len(withdrawals.Rows)),
		TotalDeposits:    deposits.TotalCount,
		TotalWithdrawals: withdrawals.TotalCount,
	}

	for _, rec := range deposits.Rows {
		result.Deposits = append(result.Deposits, s.composeDeposit(ctx, rec, snapshot))
	}
	for _, rec := range withdrawals.Rows {
		result.Withdrawals = append(result.Withdrawals, s.composeWithdrawal(ctx, rec, snapshot))
	}
	return result, nil
}

func (s *Services) composeDeposit(
	ctx context.Context, rec types.DepositRecord, snapshot types.ChainSnapshot,
) DepositTransactionPublic {
	return DepositTransactionPublic{
		Id:                rec.Id,
		OperatorId:        rec.OperatorId,
		Address:           rec.Address,
		Amount:            s.amountToDecimal(ctx, rec.PendingAmount),
		StorageFeeDeposit: s.amountToDecimal(ctx, rec.PendingStorageFeeDeposit),
		Status:            staking.DeriveDepositStatus(rec, snapshot.CurrentEpoch),
		Timestamp:         rec.Timestamp,
		BlockHeight:       rec.BlockHeight,
		ExtrinsicIds:      rec.ExtrinsicIds,
		EventIds:          rec.EventIds,
	}
}

func (s *Services) composeWithdrawal(
	ctx context.Context, rec types.WithdrawalRecord, snapshot types.ChainSnapshot,
) WithdrawalTransactionPublic {
	public := WithdrawalTransactionPublic{
		Id:               rec.Id,
		OperatorId:       rec.OperatorId,
		Address:          rec.Address,
		StorageFeeRefund: s.amountToDecimal(ctx, rec.TotalStorageFeeWithdrawal),
		UnlockBlock:      rec.WithdrawalInSharesUnlockBlock,
		Timestamp:        rec.Timestamp,
		BlockHeight:      rec.BlockHeight,
		ExtrinsicIds:     rec.ExtrinsicIds,
		EventIds:         rec.EventIds,
	}

	var unlock *staking.WithdrawalUnlockStatus
	if rec.WithdrawalInSharesUnlockBlock != nil && snapshot.CurrentBlock != nil {
		u := staking.CheckWithdrawalUnlockStatus(*rec.WithdrawalInSharesUnlockBlock, *snapshot.CurrentBlock)
		unlock = &u
		public.IsUnlocked = u.IsUnlocked
		public.BlocksRemaining = u.BlocksRemaining
	}
	public.Status = staking.DeriveWithdrawalStatus(rec, unlock)

	amount, err := staking.ResolveWithdrawalAmount(rec, snapshot.EpochToSharePrice)
	if err != nil {
		// Malformed record data is surfaced the same way as a missing share
		// price: an unresolved amount, never a fabricated zero.
		if errors.Is(err, staking.ErrUnresolvedAmount) {
			metrics.RecordUnresolvedWithdrawalAmount()
			log.Ctx(ctx).Warn().Err(err).Str("withdrawal_id", rec.Id).
				Msg("withdrawal amount unresolved")
		} else {
			log.Ctx(ctx).Error().Err(err).Str("withdrawal_id", rec.Id).
				Msg("error while resolving withdrawal amount")
		}
		public.AmountUnresolved = true
		return public
	}

	d, convErr := staking.AmountToDecimal(amount)
	if convErr != nil {
		log.Ctx(ctx).Error().Err(convErr).Str("withdrawal_id", rec.Id).
			Msg("error while converting withdrawal amount")
		public.AmountUnresolved = true
		return public
	}
	public.Amount = &d
	return public
}

// fetchRecords pulls one page of deposits and withdrawals from the indexer,
// falling back to queue-fed cached records when the indexer is unreachable.
func (s *Services) fetchRecords(
	ctx context.Context, address, operatorId string, limit, offset int64,
) (*indexer.RecordPage[types.DepositRecord], *indexer.RecordPage[types.WithdrawalRecord], *types.Error) {
	deposits, depErr := s.Clients.Indexer.GetDepositsByOperator(ctx, address, operatorId, limit, offset)
	withdrawals, wdErr := s.Clients.Indexer.GetWithdrawalsByOperator(ctx, address, operatorId, limit, offset)
	if depErr == nil && wdErr == nil {
		return deposits, withdrawals, nil
	}

	log.Ctx(ctx).Warn().Str("address", address).Str("operator_id", operatorId).
		Msg("indexer unavailable for transactions, serving cached records")

	depositDocs, totalDeposits, err := s.DbClient.FindDepositRecords(ctx, address, operatorId, limit, offset)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching cached deposit records")
		if depErr != nil {
			return nil, nil, depErr
		}
		return nil, nil, wdErr
	}
	withdrawalDocs, totalWithdrawals, err := s.DbClient.FindWithdrawalRecords(ctx, address, operatorId, limit, offset)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching cached withdrawal records")
		if wdErr != nil {
			return nil, nil, wdErr
		}
		return nil, nil, depErr
	}

	deposits = &indexer.RecordPage[types.DepositRecord]{TotalCount: totalDeposits}
	for _, doc := range depositDocs {
		deposits.Rows = append(deposits.Rows, depositRecordFromDocument(doc))
	}
	withdrawals = &indexer.RecordPage[types.WithdrawalRecord]{TotalCount: totalWithdrawals}
	for _, doc := range withdrawalDocs {
		withdrawals.Rows = append(withdrawals.Rows, withdrawalRecordFromDocument(doc))
	}
	return deposits, withdrawals, nil
}

// resolveChainSnapshot fetches the current epoch and block once per request.
// When the epoch RPC fails the latest recorded share price epoch stands in;
// if neither is available the epoch stays unknown and deposit statuses stay
// conservatively pending.
func (s *Services) resolveChainSnapshot(ctx context.Context, operatorId, domainId string) types.ChainSnapshot {
	snapshot := types.ChainSnapshot{DomainId: domainId}
	if domainId == "" {
		return snapshot
	}

	epoch, err := s.Clients.Chain.GetCurrentDomainEpochIndex(ctx, domainId)
	if err == nil {
		snapshot.CurrentEpoch = &epoch
	} else {
		log.Ctx(ctx).Warn().Err(err).Str("domain_id", domainId).
			Msg("error while fetching current epoch, trying latest share price")
		latest, priceErr := s.Clients.Indexer.GetLatestSharePrices(ctx, operatorId, 1)
		if priceErr != nil || len(latest) == 0 {
			log.Ctx(ctx).Warn().Str("operator_id", operatorId).
				Msg("current epoch unknown, deposit statuses stay pending")
		} else {
			snapshot.CurrentEpoch = &latest[0].EpochIndex
		}
	}

	block, err := s.Clients.Chain.GetCurrentDomainBlockNumber(ctx, domainId)
	if err == nil {
		snapshot.CurrentBlock = &block
	} else {
		log.Ctx(ctx).Warn().Err(err).Str("domain_id", domainId).
			Msg("error while fetching current block, unlock statuses stay pending")
	}
	return snapshot
}

// resolveSharePrices builds the epoch to share price table for a page of
// withdrawals. Prices are immutable, so the database acts as a read-through
// cache in front of the indexer.
func (s *Services) resolveSharePrices(
	ctx context.Context, operatorId, domainId string, withdrawals []types.WithdrawalRecord,
) map[uint64]string {
	needed := make(map[uint64]bool)
	for _, rec := range withdrawals {
		if amount, ok := staking.WithdrawalAmountOf(rec).(staking.ShareDenominated); ok {
			needed[amount.Epoch] = true
		}
	}
	prices := make(map[uint64]string, len(needed))
	if len(needed) == 0 {
		return prices
	}

	epochs := make([]uint64, 0, len(needed))
	for epoch := range needed {
		epochs = append(epochs, epoch)
	}

	cached, err := s.DbClient.FindSharePricesByEpochs(ctx, operatorId, domainId, epochs)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("error while reading cached share prices")
	}
	for _, price := range cached {
		prices[price.EpochIndex] = price.Price
	}

	missing := make([]uint64, 0)
	for epoch := range needed {
		if _, ok := prices[epoch]; !ok {
			missing = append(missing, epoch)
		}
	}
	if len(missing) == 0 {
		return prices
	}

	fetched, fetchErr := s.Clients.Indexer.GetSharePricesByEpochs(ctx, operatorId, domainId, missing)
	if fetchErr != nil {
		log.Ctx(ctx).Warn().Err(fetchErr).Str("operator_id", operatorId).
			Msg("error while fetching share prices, some amounts will be unresolved")
		return prices
	}

	docs := make([]model.SharePriceDocument, 0, len(fetched))
	for _, price := range fetched {
		prices[price.EpochIndex] = price.Price
		docs = append(docs, model.SharePriceDocument{
			OperatorId: operatorId,
			DomainId:   domainId,
			EpochIndex: price.EpochIndex,
			Price:      price.Price,
		})
	}
	if err := s.DbClient.SaveSharePrices(ctx, docs); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("error while caching share prices")
	}
	return prices
}

// amountToDecimal converts a stored minor-unit amount for display. Amounts in
// additive fields degrade to zero with an error log; they never block the row.
func (s *Services) amountToDecimal(ctx context.Context, amount string) decimal.Decimal {
	if amount == "" {
		return decimal.Zero
	}
	d, err := staking.AmountToDecimal(amount)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("amount", amount).Msg("malformed amount in record")
		return decimal.Zero
	}
	return d
}

func domainIdOf(deposits []types.DepositRecord, withdrawals []types.WithdrawalRecord) string {
	for _, rec := range deposits {
		if rec.DomainId != "" {
			return rec.DomainId
		}
	}
	for _, rec := range withdrawals {
		if rec.DomainId != "" {
			return rec.DomainId
		}
	}
	return ""
}

func depositRecordFromDocument(doc model.DepositRecordDocument) types.DepositRecord {
	return types.DepositRecord{
		Id:                          doc.Id,
		OperatorId:                  doc.OperatorId,
		DomainId:                    doc.DomainId,
		Address:                     doc.Address,
		PendingAmount:               doc.PendingAmount,
		PendingStorageFeeDeposit:    doc.PendingStorageFeeDeposit,
		PendingEffectiveDomainEpoch: doc.PendingEffectiveDomainEpoch,
		Timestamp:                   doc.Timestamp,
		BlockHeight:                 doc.BlockHeight,
		ExtrinsicIds:                doc.ExtrinsicIds,
		EventIds:                    doc.EventIds,
	}
}

func withdrawalRecordFromDocument(doc model.WithdrawalRecordDocument) types.WithdrawalRecord {
	return types.WithdrawalRecord{
		Id:                            doc.Id,
		OperatorId:                    doc.OperatorId,
		DomainId:                      doc.DomainId,
		Address:                       doc.Address,
		TotalWithdrawalAmount:         doc.TotalWithdrawalAmount,
		WithdrawalInSharesAmount:      doc.WithdrawalInSharesAmount,
		WithdrawalInSharesDomainEpoch: doc.WithdrawalInSharesDomainEpoch,
		TotalStorageFeeWithdrawal:     doc.TotalStorageFeeWithdrawal,
		WithdrawalInSharesUnlockBlock: doc.WithdrawalInSharesUnlockBlock,
		Timestamp:                     doc.Timestamp,
		BlockHeight:                   doc.BlockHeight,
		ExtrinsicIds:                  doc.ExtrinsicIds,
		EventIds:                      doc.EventIds,
	}
}
