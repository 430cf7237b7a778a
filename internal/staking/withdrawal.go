package staking

import (
	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/types"
)

type WithdrawalMethod string

const (
	WithdrawAll     WithdrawalMethod = "all"
	WithdrawPartial WithdrawalMethod = "partial"
)

func (m WithdrawalMethod) Valid() bool {
	return m == WithdrawAll || m == WithdrawPartial
}

// WithdrawalPreview is the gross/net/storage-refund split for a requested
// withdrawal. Gross is what the user receives; net is the part taken from
// active stake, the rest is the proportional storage fund refund.
type WithdrawalPreview struct {
	GrossWithdrawalAmount decimal.Decimal `json:"gross_withdrawal_amount"`
	NetStakeWithdrawal    decimal.Decimal `json:"net_stake_withdrawal"`
	StorageFeeRefund      decimal.Decimal `json:"storage_fee_refund"`
	Percentage            int64           `json:"percentage"`
}

// ValidationResult is the outcome of the minimum-stake policy check. A
// rejected request is expressed here, never as an error.
type ValidationResult struct {
	IsValid                bool             `json:"is_valid"`
	Warning                string           `json:"warning,omitempty"`
	WillWithdrawAll        bool             `json:"will_withdraw_all,omitempty"`
	ActualWithdrawalAmount *decimal.Decimal `json:"actual_withdrawal_amount,omitempty"`
}

var oneHundred = decimal.NewFromInt(100)

// GetWithdrawalPreview computes the preview for a withdrawal request.
//
// For the "all" method the request amount is ignored: the whole position
// (active stake plus storage fund) is withdrawn. For "partial" the requested
// amount is the gross target the user wants to receive; the storage refund
// scales with the same fraction as the stake being withdrawn, so
// net + refund = requested and refund/storage = net/stake.
func GetWithdrawalPreview(
	requested decimal.Decimal, method WithdrawalMethod,
	activeStake, storageFeeDeposit decimal.Decimal,
) WithdrawalPreview {
	if method == WithdrawAll {
		return WithdrawalPreview{
			GrossWithdrawalAmount: activeStake.Add(storageFeeDeposit),
			NetStakeWithdrawal:    activeStake,
			StorageFeeRefund:      storageFeeDeposit,
			Percentage:            100,
		}
	}

	total := activeStake.Add(storageFeeDeposit)

	if activeStake.IsZero() {
		// Nothing is staked: the entire request is a storage refund,
		// clamped to what the storage fund actually holds.
		refund := decimal.Min(requested, storageFeeDeposit)
		return WithdrawalPreview{
			GrossWithdrawalAmount: requested,
			NetStakeWithdrawal:    decimal.Zero,
			StorageFeeRefund:      refund,
			Percentage:            percentageOf(requested, total),
		}
	}

	net := requested.Mul(activeStake).Div(total)
	// Derive the refund by subtraction so the split always sums to the
	// requested gross amount exactly.
	refund := requested.Sub(net)

	return WithdrawalPreview{
		GrossWithdrawalAmount: requested,
		NetStakeWithdrawal:    net,
		StorageFeeRefund:      refund,
		Percentage:            percentageOf(requested, total),
	}
}

func percentageOf(requested, total decimal.Decimal) int64 {
	if total.Sign() <= 0 {
		return 0
	}
	pct := requested.Mul(oneHundred).Div(total).Round(0).IntPart()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ValidateWithdrawal applies the minimum-stake policy to a withdrawal
// request. The check runs against the position's total value (stake plus
// storage fund), not active stake alone: a nominator's economic stake
// includes the storage fund.
//
// Operator owners are exempt from the minimum and may withdraw any amount.
// For everyone else, a request that would leave a remainder below the
// operator's minimum nominator stake is converted into a forced full
// withdrawal rather than rejected.
func ValidateWithdrawal(
	requested, totalPositionValue decimal.Decimal,
	operator *types.Operator, isOwner bool,
) ValidationResult {
	if isOwner {
		return ValidationResult{
			IsValid:         true,
			WillWithdrawAll: requested.GreaterThanOrEqual(totalPositionValue),
		}
	}

	if requested.Sign() <= 0 {
		return ValidationResult{
			IsValid: false,
			Warning: "Withdrawal amount must be positive",
		}
	}

	remaining := totalPositionValue.Sub(requested)

	if remaining.Sign() <= 0 {
		// Requesting the full position (or more) is always a full withdrawal.
		actual := totalPositionValue
		return ValidationResult{
			IsValid:                true,
			WillWithdrawAll:        true,
			ActualWithdrawalAmount: &actual,
		}
	}

	if remaining.LessThan(operator.MinimumNominatorStake) {
		actual := totalPositionValue
		return ValidationResult{
			IsValid:         true,
			WillWithdrawAll: true,
			Warning: "Remaining stake would fall below the operator's minimum nominator stake, " +
				"so the full position will be withdrawn instead",
			ActualWithdrawalAmount: &actual,
		}
	}

	return ValidationResult{IsValid: true}
}
