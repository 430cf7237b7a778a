package handlers

import (
	"net/http"

	"github.com/autonomys/staking-portal-api/internal/types"
)

// GetTransactions gets the caller's deposit and withdrawal history.
// @Summary Get Transactions
// @Description Fetches deposit and withdrawal records for the address, with statuses derived from current chain state and withdrawal amounts resolved from historical share prices. Amounts that cannot be resolved are flagged, never reported as zero.
// @Produce json
// @Param address query string true "Account address"
// @Param operator_id query string false "Restrict to one operator"
// @Param limit query integer false "Page size, clamped to the configured maximum"
// @Param offset query integer false "Page offset"
// @Success 200 {object} PublicResponse[services.TransactionsPublic]
// @Failure 400 {object} ErrorResponse "Missing address or invalid pagination"
// @Router /v1/transactions [get]
func (h *Handler) GetTransactions(request *http.Request) (*Result, *types.Error) {
	address := request.URL.Query().Get("address")
	if address == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "address is required")
	}
	operatorId := request.URL.Query().Get("operator_id")

	limit, offset, err := h.parsePagination(request)
	if err != nil {
		return nil, err
	}

	transactions, err := h.services.GetTransactions(request.Context(), address, operatorId, limit, offset)
	if err != nil {
		return nil, err
	}
	return NewResultWithPagination(transactions, limit, offset), nil
}
