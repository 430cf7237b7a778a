package handlers

import (
	"net/http"

	"github.com/autonomys/staking-portal-api/internal/types"
)

// GetPositions gets the caller's staking positions.
// @Summary Get Positions
// @Description Fetches every position held by the address, with total values and withdrawal unlock countdowns.
// @Produce json
// @Param address query string true "Account address"
// @Success 200 {object} PublicResponse[[]services.PositionPublic]
// @Failure 400 {object} ErrorResponse "Missing address"
// @Router /v1/positions [get]
func (h *Handler) GetPositions(request *http.Request) (*Result, *types.Error) {
	address := request.URL.Query().Get("address")
	if address == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "address is required")
	}

	positions, err := h.services.GetPositions(request.Context(), address)
	if err != nil {
		return nil, err
	}
	return NewResult(positions), nil
}
