package chain

import (
	"context"

	"github.com/autonomys/staking-portal-api/internal/types"
)

type ChainClientInterface interface {
	GetCurrentDomainEpochIndex(ctx context.Context, domainId string) (uint64, *types.Error)
	GetCurrentDomainBlockNumber(ctx context.Context, domainId string) (uint64, *types.Error)
}
