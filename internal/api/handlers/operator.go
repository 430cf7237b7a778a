package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

var sortFields = map[string]staking.SortField{
	"name":           staking.SortByName,
	"totalStaked":    staking.SortByTotalStaked,
	"nominatorCount": staking.SortByNominatorCount,
	"tax":            staking.SortByTax,
	"apy":            staking.SortByApy,
	"status":         staking.SortByStatus,
	"yourPosition":   staking.SortByYourPosition,
}

// GetOperators gets the filtered and sorted operator list.
// @Summary Get Operators
// @Description Fetches all staking operators, filtered and sorted by the query parameters. Operators the given address has a position with are returned separately, first.
// @Produce json
// @Param address query string false "Caller's account address, enables the staked split and yourPosition sort"
// @Param search query string false "Substring match against operator name or id"
// @Param domain query string false "Domain id filter, 'all' or empty matches every domain"
// @Param status query string false "Comma separated status filter: active, inactive, slashed, degraded"
// @Param sort_by query string false "Sort field: name, totalStaked, nominatorCount, tax, apy, status, yourPosition" default(totalStaked)
// @Param order query string false "Sort order: asc or desc" default(desc)
// @Param my_stakes_only query boolean false "Only return operators the address has a position with"
// @Success 200 {object} PublicResponse[services.OperatorsPublic] "Staked and filtered operator lists"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /v1/operators [get]
func (h *Handler) GetOperators(request *http.Request) (*Result, *types.Error) {
	filters, address, err := parseOperatorFilters(request)
	if err != nil {
		return nil, err
	}

	operators, err := h.services.GetOperators(request.Context(), filters, address)
	if err != nil {
		return nil, err
	}
	return NewResult(operators), nil
}

// GetOperator gets a single operator by id.
// @Summary Get Operator
// @Description Fetches one operator with its return windows and nominator count.
// @Produce json
// @Param operator_id path string true "Operator id"
// @Success 200 {object} PublicResponse[types.Operator]
// @Failure 404 {object} ErrorResponse "Operator not found"
// @Router /v1/operators/{operator_id} [get]
func (h *Handler) GetOperator(request *http.Request) (*Result, *types.Error) {
	operatorId := chi.URLParam(request, "operator_id")
	if operatorId == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "operator_id is required")
	}

	operator, err := h.services.GetOperatorById(request.Context(), operatorId)
	if err != nil {
		return nil, err
	}
	return NewResult(operator), nil
}

func parseOperatorFilters(request *http.Request) (staking.FilterState, string, *types.Error) {
	query := request.URL.Query()
	filters := staking.DefaultFilters()
	address := query.Get("address")

	filters.SearchQuery = query.Get("search")
	if domain := query.Get("domain"); domain != "" {
		filters.DomainFilter = domain
	}

	if raw := query.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := types.OperatorStatusFromString(strings.TrimSpace(s))
			if status == "" {
				return filters, "", types.NewErrorWithMsg(
					http.StatusBadRequest, types.BadRequest, "unknown operator status: "+s,
				)
			}
			filters.StatusFilter = append(filters.StatusFilter, status)
		}
	}

	if raw := query.Get("sort_by"); raw != "" {
		field, ok := sortFields[raw]
		if !ok {
			return filters, "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "unknown sort field: "+raw)
		}
		filters.SortBy = field
	}
	switch query.Get("order") {
	case "":
	case "asc":
		filters.SortOrder = staking.SortAsc
	case "desc":
		filters.SortOrder = staking.SortDesc
	default:
		return filters, "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "order must be asc or desc")
	}

	if query.Get("my_stakes_only") == "true" {
		if address == "" {
			return filters, "", types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest, "my_stakes_only requires an address",
			)
		}
		filters.MyStakesOnly = true
	}
	if filters.SortBy == staking.SortByYourPosition && address == "" {
		return filters, "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "sorting by yourPosition requires an address",
		)
	}

	return filters, address, nil
}
