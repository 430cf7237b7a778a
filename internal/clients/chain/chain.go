package chain

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/autonomys/staking-portal-api/internal/clients/base"
	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/types"
)

// ChainClient queries the chain-state endpoint for the current domain epoch
// index and block number. These two values anchor every status derivation.
type ChainClient struct {
	config     *config.ChainConfig
	httpClient *http.Client
}

func NewChainClient(cfg *config.ChainConfig) *ChainClient {
	httpClient := &http.Client{}
	return &ChainClient{
		cfg,
		httpClient,
	}
}

func (c *ChainClient) GetClientName() string {
	return "chain"
}

func (c *ChainClient) GetBaseURL() string {
	return c.config.Endpoint
}

func (c *ChainClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *ChainClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type domainEpochResponse struct {
	EpochIndex uint64 `json:"epoch_index"`
}

type domainBlockResponse struct {
	BlockNumber uint64 `json:"block_number"`
}

func (c *ChainClient) GetCurrentDomainEpochIndex(ctx context.Context, domainId string) (uint64, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: fmt.Sprintf("/domains/%s/epoch", domainId),
	}
	resp, err := baseclient.SendRequest[struct{}, domainEpochResponse](
		ctx, c, http.MethodGet, opts, nil,
	)
	if err != nil {
		return 0, err
	}
	return resp.EpochIndex, nil
}

func (c *ChainClient) GetCurrentDomainBlockNumber(ctx context.Context, domainId string) (uint64, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: fmt.Sprintf("/domains/%s/block", domainId),
	}
	resp, err := baseclient.SendRequest[struct{}, domainBlockResponse](
		ctx, c, http.MethodGet, opts, nil,
	)
	if err != nil {
		return 0, err
	}
	return resp.BlockNumber, nil
}
