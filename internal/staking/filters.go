package staking

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/types"
)

type SortField string

const (
	SortByName           SortField = "name"
	SortByTotalStaked    SortField = "totalStaked"
	SortByNominatorCount SortField = "nominatorCount"
	SortByTax            SortField = "tax"
	SortByApy            SortField = "apy"
	SortByStatus         SortField = "status"
	SortByYourPosition   SortField = "yourPosition"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DomainFilterAll matches every domain.
const DomainFilterAll = "all"

type FilterState struct {
	SearchQuery  string
	DomainFilter string
	StatusFilter []types.OperatorStatus
	SortBy       SortField
	SortOrder    SortOrder
	MyStakesOnly bool
}

func DefaultFilters() FilterState {
	return FilterState{
		SearchQuery:  "",
		DomainFilter: DomainFilterAll,
		SortBy:       SortByTotalStaked,
		SortOrder:    SortDesc,
		MyStakesOnly: false,
	}
}

// FilterResult separates the caller's staked operators, which render on top,
// from the remaining filtered list. Both groups carry the same sort.
type FilterResult struct {
	Staked   []types.Operator
	Filtered []types.Operator
}

var statusRank = map[types.OperatorStatus]int{
	types.OperatorActive:   4,
	types.OperatorDegraded: 3,
	types.OperatorInactive: 2,
	types.OperatorSlashed:  1,
}

// ApplyFilters filters and sorts an operator list. It is a pure function of
// its inputs: no store, no implicit state, identical output for identical
// calls.
func ApplyFilters(operators []types.Operator, filters FilterState, positions []types.Position) FilterResult {
	// operatorId -> total position value, for the yourPosition sort and the
	// staked split.
	positionValues := make(map[string]decimal.Decimal, len(positions))
	stakedIds := make(map[string]bool, len(positions))
	for _, pos := range positions {
		total := TotalPositionValue(pos)
		positionValues[pos.OperatorId] = total
		if total.Sign() > 0 {
			stakedIds[pos.OperatorId] = true
		}
	}

	filtered := make([]types.Operator, 0, len(operators))
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))
	for _, op := range operators {
		if query != "" &&
			!strings.Contains(strings.ToLower(op.Name), query) &&
			!strings.Contains(strings.ToLower(op.Id), query) {
			continue
		}
		if filters.DomainFilter != "" && filters.DomainFilter != DomainFilterAll &&
			op.DomainId != filters.DomainFilter {
			continue
		}
		if len(filters.StatusFilter) > 0 && !containsStatus(filters.StatusFilter, op.Status) {
			continue
		}
		if filters.MyStakesOnly && !stakedIds[op.Id] {
			continue
		}
		filtered = append(filtered, op)
	}

	compare := func(a, b *types.Operator) int {
		comparison := compareByField(a, b, filters.SortBy, positionValues)
		if filters.SortOrder == SortDesc {
			comparison = -comparison
		}
		// Tiebreakers: pool value desc, then name asc.
		if comparison == 0 && filters.SortBy != SortByTotalStaked {
			comparison = b.PoolValue().Cmp(a.PoolValue())
		}
		if comparison == 0 && filters.SortBy != SortByName {
			comparison = strings.Compare(a.Name, b.Name)
		}
		return comparison
	}

	var staked, nonStaked []types.Operator
	for _, op := range filtered {
		if stakedIds[op.Id] {
			staked = append(staked, op)
		} else {
			nonStaked = append(nonStaked, op)
		}
	}
	sort.SliceStable(staked, func(i, j int) bool { return compare(&staked[i], &staked[j]) < 0 })
	sort.SliceStable(nonStaked, func(i, j int) bool { return compare(&nonStaked[i], &nonStaked[j]) < 0 })

	return FilterResult{Staked: staked, Filtered: nonStaked}
}

func compareByField(a, b *types.Operator, field SortField, positionValues map[string]decimal.Decimal) int {
	switch field {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByNominatorCount:
		return compareInt64(nominatorCount(a), nominatorCount(b))
	case SortByTax:
		return compareFloat64(a.NominationTax, b.NominationTax)
	case SortByApy:
		return compareFloat64(annualizedReturn(a), annualizedReturn(b))
	case SortByStatus:
		return compareInt64(int64(statusRank[a.Status]), int64(statusRank[b.Status]))
	case SortByYourPosition:
		return positionValues[a.Id].Cmp(positionValues[b.Id])
	default: // totalStaked
		return a.PoolValue().Cmp(b.PoolValue())
	}
}

func nominatorCount(op *types.Operator) int64 {
	if op.NominatorCount == nil {
		return 0
	}
	return *op.NominatorCount
}

func annualizedReturn(op *types.Operator) float64 {
	if op.EstimatedReturnDetails == nil {
		return 0
	}
	return op.EstimatedReturnDetails.AnnualizedReturn
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func containsStatus(statuses []types.OperatorStatus, status types.OperatorStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
