package indexer

import (
	"context"

	"github.com/autonomys/staking-portal-api/internal/types"
)

// RecordPage is one page of indexer rows plus the total row count for the
// filter that produced it.
type RecordPage[T any] struct {
	Rows       []T
	TotalCount int64
}

type IndexerClientInterface interface {
	GetOperators(ctx context.Context) ([]types.Operator, *types.Error)
	GetOperatorReturnWindows(ctx context.Context, operatorId string) (*types.ReturnDetailsWindows, *types.Error)
	GetNominatorCount(ctx context.Context, operatorId string) (int64, *types.Error)
	GetPositionsByAddress(ctx context.Context, address string) ([]types.Position, *types.Error)
	GetDepositsByOperator(
		ctx context.Context, address, operatorId string, limit, offset int64,
	) (*RecordPage[types.DepositRecord], *types.Error)
	GetWithdrawalsByOperator(
		ctx context.Context, address, operatorId string, limit, offset int64,
	) (*RecordPage[types.WithdrawalRecord], *types.Error)
	GetSharePricesByEpochs(
		ctx context.Context, operatorId, domainId string, epochs []uint64,
	) ([]types.SharePrice, *types.Error)
	GetLatestSharePrices(ctx context.Context, operatorId string, limit int64) ([]types.SharePrice, *types.Error)
}
