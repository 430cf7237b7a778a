package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

type PendingWithdrawalPublic struct {
	GrossWithdrawalAmount decimal.Decimal `json:"gross_withdrawal_amount"`
	UnlockBlock           uint64          `json:"unlock_block"`
	IsUnlocked            bool            `json:"is_unlocked"`
	BlocksRemaining       uint64          `json:"blocks_remaining"`
}

type PositionPublic struct {
	OperatorId         string                    `json:"operator_id"`
	Address            string                    `json:"address"`
	ActiveStake        decimal.Decimal           `json:"active_stake"`
	StorageFeeDeposit  decimal.Decimal           `json:"storage_fee_deposit"`
	TotalValue         decimal.Decimal           `json:"total_value"`
	PendingDeposit     *types.PendingDeposit     `json:"pending_deposit,omitempty"`
	PendingWithdrawals []PendingWithdrawalPublic `json:"pending_withdrawals,omitempty"`
}

// GetPositions returns the caller's positions with their total value and
// unlock countdowns. Current block heights are fetched per domain; when a
// height cannot be resolved the domain's withdrawals are reported locked with
// no countdown rather than guessed.
func (s *Services) GetPositions(ctx context.Context, address string) ([]PositionPublic, *types.Error) {
	positions, err := s.Clients.Indexer.GetPositionsByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return []PositionPublic{}, nil
	}

	domainByOperator := s.operatorDomains(ctx)
	currentBlocks := make(map[string]uint64)
	for _, pos := range positions {
		domainId, ok := domainByOperator[pos.OperatorId]
		if !ok || domainId == "" {
			continue
		}
		if _, done := currentBlocks[domainId]; done {
			continue
		}
		block, blockErr := s.Clients.Chain.GetCurrentDomainBlockNumber(ctx, domainId)
		if blockErr != nil {
			log.Ctx(ctx).Warn().Err(blockErr).Str("domain_id", domainId).
				Msg("error while fetching current domain block")
			continue
		}
		currentBlocks[domainId] = block
	}

	result := make([]PositionPublic, 0, len(positions))
	for _, pos := range positions {
		public := PositionPublic{
			OperatorId:        pos.OperatorId,
			Address:           pos.Address,
			ActiveStake:       pos.ActiveStake,
			StorageFeeDeposit: pos.StorageFeeDeposit,
			TotalValue:        staking.TotalPositionValue(pos),
			PendingDeposit:    pos.PendingDeposit,
		}

		var currentBlock uint64
		hasBlock := false
		if domainId, ok := domainByOperator[pos.OperatorId]; ok {
			currentBlock, hasBlock = currentBlocks[domainId]
		}

		for _, w := range pos.PendingWithdrawals {
			item := PendingWithdrawalPublic{
				GrossWithdrawalAmount: w.GrossWithdrawalAmount,
				UnlockBlock:           w.UnlockBlock,
			}
			if hasBlock {
				unlock := staking.CheckWithdrawalUnlockStatus(w.UnlockBlock, currentBlock)
				item.IsUnlocked = unlock.IsUnlocked
				item.BlocksRemaining = unlock.BlocksRemaining
			}
			public.PendingWithdrawals = append(public.PendingWithdrawals, item)
		}

		result = append(result, public)
	}
	return result, nil
}

// operatorDomains maps operator ids to domain ids, best effort.
func (s *Services) operatorDomains(ctx context.Context) map[string]string {
	operators, err := s.fetchOperators(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("error while resolving operator domains")
		return map[string]string{}
	}
	domains := make(map[string]string, len(operators))
	for i := range operators {
		domains[operators[i].Id] = operators[i].DomainId
	}
	return domains
}
