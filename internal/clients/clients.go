package clients

import (
	"github.com/autonomys/staking-portal-api/internal/clients/chain"
	"github.com/autonomys/staking-portal-api/internal/clients/indexer"
	"github.com/autonomys/staking-portal-api/internal/config"
)

type Clients struct {
	Indexer indexer.IndexerClientInterface
	Chain   chain.ChainClientInterface
}

func New(cfg *config.Config) *Clients {
	indexerClient := indexer.NewIndexerClient(&cfg.Indexer)
	chainClient := chain.NewChainClient(&cfg.Chain)

	return &Clients{
		Indexer: indexerClient,
		Chain:   chainClient,
	}
}
