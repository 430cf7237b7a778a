package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

type PreviewWithdrawalRequest struct {
	OperatorId string `json:"operator_id"`
	Address    string `json:"address"`
	Method     string `json:"method"`
	Amount     string `json:"amount,omitempty"`
}

// PreviewWithdrawal previews a withdrawal request.
// @Summary Preview Withdrawal
// @Description Computes the gross/net/storage-refund split for a withdrawal request and checks it against the operator's minimum nominator stake. A request the policy refuses is returned with is_valid false, not as an error.
// @Accept json
// @Produce json
// @Param request body PreviewWithdrawalRequest true "Withdrawal request. Method is 'all' or 'partial'; amount is required for 'partial' and ignored for 'all'."
// @Success 200 {object} PublicResponse[services.WithdrawalPreviewPublic]
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Router /v1/withdrawals/preview [post]
func (h *Handler) PreviewWithdrawal(request *http.Request) (*Result, *types.Error) {
	var payload PreviewWithdrawalRequest
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}

	if payload.OperatorId == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "operator_id is required")
	}
	if payload.Address == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "address is required")
	}

	method := staking.WithdrawalMethod(payload.Method)
	if !method.Valid() {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "method must be 'all' or 'partial'")
	}

	amount := decimal.Zero
	if method == staking.WithdrawPartial {
		if payload.Amount == "" {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "amount is required for partial withdrawals")
		}
		parsed, err := decimal.NewFromString(payload.Amount)
		if err != nil {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidNumericInput, "amount is not a valid decimal")
		}
		amount = parsed
	}

	preview, err := h.services.PreviewWithdrawal(request.Context(), payload.OperatorId, payload.Address, method, amount)
	if err != nil {
		return nil, err
	}
	return NewResult(preview), nil
}
