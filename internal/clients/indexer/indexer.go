package indexer

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/autonomys/staking-portal-api/internal/clients/base"
	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/types"
)

type IndexerClient struct {
	config     *config.IndexerConfig
	httpClient *http.Client
}

func NewIndexerClient(cfg *config.IndexerConfig) *IndexerClient {
	httpClient := &http.Client{}
	return &IndexerClient{
		cfg,
		httpClient,
	}
}

// Necessary for the base client to identify the client and instantiate the request
func (c *IndexerClient) GetClientName() string {
	return "indexer"
}

func (c *IndexerClient) GetBaseURL() string {
	return c.config.Endpoint
}

func (c *IndexerClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *IndexerClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphqlError `json:"errors,omitempty"`
}

type recordsPayload[T any] struct {
	Rows       []T   `json:"rows"`
	TotalCount int64 `json:"total_count"`
}

// query posts a GraphQL document and unwraps the data envelope. GraphQL-level
// errors are surfaced as internal service errors; the indexer is expected to
// answer well-formed documents.
func query[T any](
	ctx context.Context, c *IndexerClient, document string, variables map[string]any,
) (*T, *types.Error) {
	input := graphqlRequest{Query: document, Variables: variables}
	opts := &baseclient.BaseClientOptions{
		Path:    "",
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	resp, err := baseclient.SendRequest[graphqlRequest, graphqlResponse[T]](
		ctx, c, http.MethodPost, opts, &input,
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError, types.InternalServiceError,
			fmt.Sprintf("indexer returned an error: %s", resp.Errors[0].Message),
		)
	}
	return &resp.Data, nil
}

type operatorsData struct {
	Operators recordsPayload[types.Operator] `json:"operators"`
}

func (c *IndexerClient) GetOperators(ctx context.Context) ([]types.Operator, *types.Error) {
	data, err := query[operatorsData](ctx, c, operatorsQuery, nil)
	if err != nil {
		return nil, err
	}
	return data.Operators.Rows, nil
}

type returnWindowsData struct {
	Windows *types.ReturnDetailsWindows `json:"operator_return_windows"`
}

func (c *IndexerClient) GetOperatorReturnWindows(
	ctx context.Context, operatorId string,
) (*types.ReturnDetailsWindows, *types.Error) {
	data, err := query[returnWindowsData](ctx, c, operatorReturnWindowsQuery, map[string]any{
		"operator_id": operatorId,
	})
	if err != nil {
		return nil, err
	}
	if data.Windows == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound,
			fmt.Sprintf("no return windows for operator %s", operatorId),
		)
	}
	return data.Windows, nil
}

type nominatorCountData struct {
	NominatorCount struct {
		Count int64 `json:"count"`
	} `json:"nominator_count"`
}

func (c *IndexerClient) GetNominatorCount(ctx context.Context, operatorId string) (int64, *types.Error) {
	data, err := query[nominatorCountData](ctx, c, nominatorCountQuery, map[string]any{
		"operator_id": operatorId,
	})
	if err != nil {
		return 0, err
	}
	return data.NominatorCount.Count, nil
}

type positionsData struct {
	Positions recordsPayload[types.Position] `json:"positions"`
}

func (c *IndexerClient) GetPositionsByAddress(ctx context.Context, address string) ([]types.Position, *types.Error) {
	data, err := query[positionsData](ctx, c, positionsQuery, map[string]any{
		"address": address,
	})
	if err != nil {
		return nil, err
	}
	return data.Positions.Rows, nil
}

type depositsData struct {
	Deposits recordsPayload[types.DepositRecord] `json:"deposits"`
}

func (c *IndexerClient) GetDepositsByOperator(
	ctx context.Context, address, operatorId string, limit, offset int64,
) (*RecordPage[types.DepositRecord], *types.Error) {
	data, err := query[depositsData](ctx, c, depositsQuery, map[string]any{
		"address":     address,
		"operator_id": operatorId,
		"limit":       limit,
		"offset":      offset,
	})
	if err != nil {
		return nil, err
	}
	return &RecordPage[types.DepositRecord]{
		Rows:       data.Deposits.Rows,
		TotalCount: data.Deposits.TotalCount,
	}, nil
}

type withdrawalsData struct {
	Withdrawals recordsPayload[types.WithdrawalRecord] `json:"withdrawals"`
}

func (c *IndexerClient) GetWithdrawalsByOperator(
	ctx context.Context, address, operatorId string, limit, offset int64,
) (*RecordPage[types.WithdrawalRecord], *types.Error) {
	data, err := query[withdrawalsData](ctx, c, withdrawalsQuery, map[string]any{
		"address":     address,
		"operator_id": operatorId,
		"limit":       limit,
		"offset":      offset,
	})
	if err != nil {
		return nil, err
	}
	return &RecordPage[types.WithdrawalRecord]{
		Rows:       data.Withdrawals.Rows,
		TotalCount: data.Withdrawals.TotalCount,
	}, nil
}

type sharePricesData struct {
	SharePrices recordsPayload[types.SharePrice] `json:"share_prices"`
}

func (c *IndexerClient) GetSharePricesByEpochs(
	ctx context.Context, operatorId, domainId string, epochs []uint64,
) ([]types.SharePrice, *types.Error) {
	data, err := query[sharePricesData](ctx, c, sharePricesByEpochsQuery, map[string]any{
		"operator_id": operatorId,
		"domain_id":   domainId,
		"epochs":      epochs,
	})
	if err != nil {
		return nil, err
	}
	return data.SharePrices.Rows, nil
}

type latestSharePricesData struct {
	LatestSharePrices recordsPayload[types.SharePrice] `json:"latest_share_prices"`
}

func (c *IndexerClient) GetLatestSharePrices(
	ctx context.Context, operatorId string, limit int64,
) ([]types.SharePrice, *types.Error) {
	data, err := query[latestSharePricesData](ctx, c, latestSharePricesQuery, map[string]any{
		"operator_id": operatorId,
		"limit":       limit,
	})
	if err != nil {
		return nil, err
	}
	return data.LatestSharePrices.Rows, nil
}
