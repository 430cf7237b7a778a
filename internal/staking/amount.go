package staking

import (
	"errors"
	"fmt"

	"github.com/autonomys/staking-portal-api/internal/types"
)

// ErrUnresolvedAmount is returned when a share-denominated withdrawal has no
// matching share price for its epoch. Callers must surface the amount as
// unknown; resolving to "0" would show a misleading figure.
var ErrUnresolvedAmount = errors.New("withdrawal amount unresolved")

// WithdrawalAmount is the amount carried by a withdrawal record: either given
// directly in minor units, or denominated in shares that need the share price
// recorded at a specific epoch.
type WithdrawalAmount interface {
	isWithdrawalAmount()
}

type DirectAmount struct {
	Value string
}

type ShareDenominated struct {
	Shares string
	Epoch  uint64
}

func (DirectAmount) isWithdrawalAmount()     {}
func (ShareDenominated) isWithdrawalAmount() {}

// WithdrawalAmountOf classifies a record's amount. A positive direct amount
// wins; otherwise shares plus epoch are required for conversion. Records with
// neither carry a direct zero amount.
func WithdrawalAmountOf(rec types.WithdrawalRecord) WithdrawalAmount {
	if rec.TotalWithdrawalAmount != "" && rec.TotalWithdrawalAmount != "0" {
		return DirectAmount{Value: rec.TotalWithdrawalAmount}
	}
	if rec.WithdrawalInSharesAmount != "" && rec.WithdrawalInSharesDomainEpoch != nil {
		return ShareDenominated{
			Shares: rec.WithdrawalInSharesAmount,
			Epoch:  *rec.WithdrawalInSharesDomainEpoch,
		}
	}
	return DirectAmount{Value: "0"}
}

// ResolveWithdrawalAmount resolves a withdrawal record's amount in minor
// units against an epoch-to-share-price table. Share-denominated amounts with
// no recorded price for their epoch return ErrUnresolvedAmount.
func ResolveWithdrawalAmount(rec types.WithdrawalRecord, epochToSharePrice map[uint64]string) (string, error) {
	switch amount := WithdrawalAmountOf(rec).(type) {
	case DirectAmount:
		return amount.Value, nil
	case ShareDenominated:
		price, ok := epochToSharePrice[amount.Epoch]
		if !ok {
			return "", fmt.Errorf("%w: no share price for epoch %d", ErrUnresolvedAmount, amount.Epoch)
		}
		return MultiplySharesBySharePrice(amount.Shares, price)
	default:
		return "", fmt.Errorf("%w: unknown amount variant", ErrUnresolvedAmount)
	}
}
