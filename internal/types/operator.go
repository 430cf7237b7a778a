package types

import (
	"github.com/shopspring/decimal"
)

type OperatorStatus string

const (
	OperatorActive   OperatorStatus = "active"
	OperatorInactive OperatorStatus = "inactive"
	OperatorSlashed  OperatorStatus = "slashed"
	OperatorDegraded OperatorStatus = "degraded"
)

func (s OperatorStatus) ToString() string {
	return string(s)
}

func OperatorStatusFromString(s string) OperatorStatus {
	switch s {
	case OperatorActive.ToString():
		return OperatorActive
	case OperatorInactive.ToString():
		return OperatorInactive
	case OperatorSlashed.ToString():
		return OperatorSlashed
	case OperatorDegraded.ToString():
		return OperatorDegraded
	default:
		return ""
	}
}

// ReturnDetails is an estimated annualized return over a trailing window.
type ReturnDetails struct {
	AnnualizedReturn float64 `json:"annualized_return"`
	WindowDays       int     `json:"window_days"`
}

// ReturnDetailsWindows holds the 1/3/7/30 day estimation windows. Entries are
// nil until the corresponding enrichment lookup succeeds.
type ReturnDetailsWindows struct {
	D1  *ReturnDetails `json:"d1,omitempty"`
	D3  *ReturnDetails `json:"d3,omitempty"`
	D7  *ReturnDetails `json:"d7,omitempty"`
	D30 *ReturnDetails `json:"d30,omitempty"`
}

// Operator is a staking pool. Fetched in bulk from the indexer and enriched
// asynchronously with return windows and nominator counts; never mutated by
// the valuation engine itself.
type Operator struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	DomainId     string `json:"domain_id"`
	DomainName   string `json:"domain_name"`
	OwnerAccount string `json:"owner_account"`

	// Pool configuration
	NominationTax         float64         `json:"nomination_tax"`
	MinimumNominatorStake decimal.Decimal `json:"minimum_nominator_stake"`

	Status      OperatorStatus  `json:"status"`
	TotalStaked decimal.Decimal `json:"total_staked"`

	// Aggregates, present when the indexer exposes them
	TotalStorageFund *decimal.Decimal `json:"total_storage_fund,omitempty"`
	TotalPoolValue   *decimal.Decimal `json:"total_pool_value,omitempty"`

	// Derived metrics filled in by best-effort enrichment
	EstimatedReturnDetails        *ReturnDetails        `json:"estimated_return_details,omitempty"`
	EstimatedReturnDetailsWindows *ReturnDetailsWindows `json:"estimated_return_details_windows,omitempty"`
	NominatorCount                *int64                `json:"nominator_count,omitempty"`
}

// PoolValue is the sortable pool size: total pool value when known, total
// staked otherwise.
func (o *Operator) PoolValue() decimal.Decimal {
	if o.TotalPoolValue != nil {
		return *o.TotalPoolValue
	}
	return o.TotalStaked
}
