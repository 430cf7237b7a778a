package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/staking"
	"github.com/autonomys/staking-portal-api/internal/types"
)

// WithdrawalPreviewPublic pairs the gross/net/refund split with the
// minimum-stake validation verdict. A rejected request still returns 200 with
// IsValid false; only missing operators and malformed input are errors.
type WithdrawalPreviewPublic struct {
	OperatorId string                    `json:"operator_id"`
	Address    string                    `json:"address"`
	Preview    staking.WithdrawalPreview `json:"preview"`
	Validation staking.ValidationResult  `json:"validation"`
}

// PreviewWithdrawal computes what a withdrawal request would pay out and
// whether the minimum-stake policy allows it. A request that would leave the
// position below the operator's minimum nominator stake is converted into a
// full withdrawal; the preview reflects the converted request.
func (s *Services) PreviewWithdrawal(
	ctx context.Context, operatorId, address string,
	method staking.WithdrawalMethod, amount decimal.Decimal,
) (*WithdrawalPreviewPublic, *types.Error) {
	operator, err := s.GetOperatorById(ctx, operatorId)
	if err != nil {
		if err.ErrorCode == types.NotFound {
			// Unknown operator is a policy refusal, not a transport error:
			// the caller gets a structured verdict it can render.
			return &WithdrawalPreviewPublic{
				OperatorId: operatorId,
				Address:    address,
				Validation: staking.ValidationResult{
					IsValid: false,
					Warning: "Operator not found",
				},
			}, nil
		}
		return nil, err
	}

	position, err := s.findPosition(ctx, operatorId, address)
	if err != nil {
		return nil, err
	}
	totalValue := staking.TotalPositionValue(position)
	isOwner := address == operator.OwnerAccount

	requested := amount
	if method == staking.WithdrawAll {
		requested = totalValue
	}

	validation := staking.ValidateWithdrawal(requested, totalValue, operator, isOwner)

	result := &WithdrawalPreviewPublic{
		OperatorId: operatorId,
		Address:    address,
		Validation: validation,
	}
	if !validation.IsValid {
		return result, nil
	}

	previewMethod := method
	previewAmount := requested
	if validation.WillWithdrawAll {
		previewMethod = staking.WithdrawAll
	} else if validation.ActualWithdrawalAmount != nil {
		previewAmount = *validation.ActualWithdrawalAmount
	}

	result.Preview = staking.GetWithdrawalPreview(
		previewAmount, previewMethod, position.ActiveStake, position.StorageFeeDeposit,
	)
	return result, nil
}

// findPosition returns the caller's position with the operator, or an empty
// position when none exists. A missing position is a valid state: the
// validation will reject any positive withdrawal from it.
func (s *Services) findPosition(ctx context.Context, operatorId, address string) (types.Position, *types.Error) {
	positions, err := s.Clients.Indexer.GetPositionsByAddress(ctx, address)
	if err != nil {
		return types.Position{}, err
	}
	for _, pos := range positions {
		if pos.OperatorId == operatorId {
			return pos, nil
		}
	}
	return types.Position{
		OperatorId:        operatorId,
		Address:           address,
		ActiveStake:       decimal.Zero,
		StorageFeeDeposit: decimal.Zero,
	}, nil
}
