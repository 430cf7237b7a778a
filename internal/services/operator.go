package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/db/model"
	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

// OperatorsPublic is the operator list response. Operators the caller has a
// position with come first, carrying the same sort as the rest.
type OperatorsPublic struct {
	Staked   []types.Operator `json:"staked"`
	Filtered []types.Operator `json:"filtered"`
}

// GetOperators returns the filtered and sorted operator list. Operators come
// from the indexer, falling back to the last saved snapshots when the indexer
// is unreachable. Return windows and nominator counts are enriched
// concurrently per operator; an enrichment failure leaves that operator's
// derived fields empty instead of failing the request.
func (s *Services) GetOperators(
	ctx context.Context, filters staking.FilterState, address string,
) (*OperatorsPublic, *types.Error) {
	operators, err := s.fetchOperators(ctx)
	if err != nil {
		return nil, err
	}

	s.enrichOperators(ctx, operators)
	s.saveOperatorSnapshots(ctx, operators)

	var positions []types.Position
	if address != "" {
		var posErr *types.Error
		positions, posErr = s.Clients.Indexer.GetPositionsByAddress(ctx, address)
		if posErr != nil {
			// Positions only drive the staked split and the yourPosition
			// sort; serve the list without them.
			log.Ctx(ctx).Warn().Err(posErr).Str("address", address).
				Msg("error while fetching positions for operator list")
			positions = nil
		}
	}

	result := staking.ApplyFilters(operators, filters, positions)
	return &OperatorsPublic{Staked: result.Staked, Filtered: result.Filtered}, nil
}

// GetOperatorById returns a single enriched operator.
func (s *Services) GetOperatorById(ctx context.Context, operatorId string) (*types.Operator, *types.Error) {
	operators, err := s.fetchOperators(ctx)
	if err != nil {
		return nil, err
	}

	for i := range operators {
		if operators[i].Id == operatorId {
			s.enrichOperators(ctx, operators[i:i+1])
			return &operators[i], nil
		}
	}
	return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "operator not found")
}

func (s *Services) fetchOperators(ctx context.Context) ([]types.Operator, *types.Error) {
	operators, err := s.Clients.Indexer.GetOperators(ctx)
	if err == nil {
		return operators, nil
	}

	log.Ctx(ctx).Error().Err(err).Msg("error while fetching operators from indexer, falling back to snapshots")
	snapshots, dbErr := s.DbClient.FindOperatorSnapshots(ctx)
	if dbErr != nil || len(snapshots) == 0 {
		if dbErr != nil {
			log.Ctx(ctx).Error().Err(dbErr).Msg("error while fetching operator snapshots")
		}
		return nil, err
	}

	operators = make([]types.Operator, 0, len(snapshots))
	for _, snapshot := range snapshots {
		operators = append(operators, operatorFromSnapshot(snapshot))
	}
	return operators, nil
}

// enrichOperators settles the per-operator lookups concurrently. Failures are
// logged and leave the operator's derived fields unset.
func (s *Services) enrichOperators(ctx context.Context, operators []types.Operator) {
	var wg sync.WaitGroup
	for i := range operators {
		wg.Add(1)
		go func(op *types.Operator) {
			defer wg.Done()

			windows, err := s.Clients.Indexer.GetOperatorReturnWindows(ctx, op.Id)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("operator_id", op.Id).
					Msg("error while fetching operator return windows")
			} else if windows != nil {
				op.EstimatedReturnDetailsWindows = windows
				op.EstimatedReturnDetails = preferredReturnWindow(windows)
			}

			count, err := s.Clients.Indexer.GetNominatorCount(ctx, op.Id)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("operator_id", op.Id).
					Msg("error while fetching nominator count")
			} else {
				op.NominatorCount = &count
			}
		}(&operators[i])
	}
	wg.Wait()
}

// preferredReturnWindow picks the headline return figure: the 7 day window
// when available, then the widest remaining window.
func preferredReturnWindow(windows *types.ReturnDetailsWindows) *types.ReturnDetails {
	for _, w := range []*types.ReturnDetails{windows.D7, windows.D30, windows.D3, windows.D1} {
		if w != nil {
			return w
		}
	}
	return nil
}

func (s *Services) saveOperatorSnapshots(ctx context.Context, operators []types.Operator) {
	if len(operators) == 0 {
		return
	}
	snapshots := make([]model.OperatorSnapshotDocument, 0, len(operators))
	now := time.Now().UTC()
	for i := range operators {
		snapshots = append(snapshots, snapshotFromOperator(&operators[i], now))
	}
	if err := s.DbClient.SaveOperatorSnapshots(ctx, snapshots); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving operator snapshots")
	}
}

func snapshotFromOperator(op *types.Operator, updatedAt time.Time) model.OperatorSnapshotDocument {
	snapshot := model.OperatorSnapshotDocument{
		Id:                    op.Id,
		Name:                  op.Name,
		DomainId:              op.DomainId,
		DomainName:            op.DomainName,
		OwnerAccount:          op.OwnerAccount,
		NominationTax:         op.NominationTax,
		MinimumNominatorStake: op.MinimumNominatorStake.String(),
		Status:                op.Status.ToString(),
		TotalStaked:           op.TotalStaked.String(),
		UpdatedAt:             updatedAt,
	}
	if op.TotalStorageFund != nil {
		snapshot.TotalStorageFund = op.TotalStorageFund.String()
	}
	if op.TotalPoolValue != nil {
		snapshot.TotalPoolValue = op.TotalPoolValue.String()
	}
	return snapshot
}

func operatorFromSnapshot(snapshot model.OperatorSnapshotDocument) types.Operator {
	op := types.Operator{
		Id:                    snapshot.Id,
		Name:                  snapshot.Name,
		DomainId:              snapshot.DomainId,
		DomainName:            snapshot.DomainName,
		OwnerAccount:          snapshot.OwnerAccount,
		NominationTax:         snapshot.NominationTax,
		MinimumNominatorStake: decimalFromStored(snapshot.MinimumNominatorStake),
		Status:                types.OperatorStatusFromString(snapshot.Status),
		TotalStaked:           decimalFromStored(snapshot.TotalStaked),
	}
	if snapshot.TotalStorageFund != "" {
		v := decimalFromStored(snapshot.TotalStorageFund)
		op.TotalStorageFund = &v
	}
	if snapshot.TotalPoolValue != "" {
		v := decimalFromStored(snapshot.TotalPoolValue)
		op.TotalPoolValue = &v
	}
	return op
}

// decimalFromStored parses amounts this service wrote itself; a corrupt value
// degrades to zero rather than dropping the whole snapshot.
func decimalFromStored(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
