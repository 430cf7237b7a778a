package staking

import (
	"github.com/shopspring/decimal"

	"github.com/autonomys/staking-portal-api/internal/types"
)

// TotalPositionValue is the position invariant used everywhere a position is
// valued: active stake plus storage fund plus any pending deposit. Pending
// withdrawals are excluded once requested; they are owed but no longer
// staked.
func TotalPositionValue(pos types.Position) decimal.Decimal {
	total := pos.ActiveStake.Add(pos.StorageFeeDeposit)
	if pos.PendingDeposit != nil {
		total = total.Add(pos.PendingDeposit.Amount)
	}
	return total
}
