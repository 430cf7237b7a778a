package staking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autonomys/staking-portal-api/internal/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetWithdrawalPreviewAll(t *testing.T) {
	stake := dec("100")
	storage := dec("20")

	// the requested amount is irrelevant for a full withdrawal
	for _, requested := range []string{"0", "60", "99999"} {
		preview := GetWithdrawalPreview(dec(requested), WithdrawAll, stake, storage)
		assert.True(t, preview.GrossWithdrawalAmount.Equal(dec("120")), "gross must be stake+storage")
		assert.True(t, preview.NetStakeWithdrawal.Equal(stake))
		assert.True(t, preview.StorageFeeRefund.Equal(storage))
		assert.Equal(t, int64(100), preview.Percentage)
	}
}

func TestGetWithdrawalPreviewPartialProportionalSplit(t *testing.T) {
	preview := GetWithdrawalPreview(dec("60"), WithdrawPartial, dec("100"), dec("20"))

	assert.True(t, preview.GrossWithdrawalAmount.Equal(dec("60")))
	assert.True(t, preview.NetStakeWithdrawal.Equal(dec("50")), "net = 60*100/120, got %s", preview.NetStakeWithdrawal)
	assert.True(t, preview.StorageFeeRefund.Equal(dec("10")), "refund = 60*20/120, got %s", preview.StorageFeeRefund)
	assert.Equal(t, int64(50), preview.Percentage)

	// split always sums to the requested gross amount
	sum := preview.NetStakeWithdrawal.Add(preview.StorageFeeRefund)
	assert.True(t, sum.Equal(preview.GrossWithdrawalAmount))
}

func TestGetWithdrawalPreviewPartialSumsExactly(t *testing.T) {
	// 1/3-style splits do not lose dust between net and refund
	preview := GetWithdrawalPreview(dec("10"), WithdrawPartial, dec("1"), dec("2"))
	sum := preview.NetStakeWithdrawal.Add(preview.StorageFeeRefund)
	assert.True(t, sum.Equal(dec("10")), "net %s + refund %s must equal requested", preview.NetStakeWithdrawal, preview.StorageFeeRefund)
}

func TestGetWithdrawalPreviewZeroStake(t *testing.T) {
	preview := GetWithdrawalPreview(dec("15"), WithdrawPartial, dec("0"), dec("10"))

	assert.True(t, preview.NetStakeWithdrawal.IsZero())
	assert.True(t, preview.StorageFeeRefund.Equal(dec("10")), "refund clamps to available storage")
}

func TestGetWithdrawalPreviewPercentageRounding(t *testing.T) {
	preview := GetWithdrawalPreview(dec("1"), WithdrawPartial, dec("100"), dec("20"))
	assert.Equal(t, int64(1), preview.Percentage, "1/120 rounds to 1%")

	preview = GetWithdrawalPreview(dec("0.1"), WithdrawPartial, dec("100"), dec("20"))
	assert.Equal(t, int64(0), preview.Percentage)
}

func testOperator(minStake string) *types.Operator {
	return &types.Operator{
		Id:                    "0",
		Name:                  "Operator 0",
		OwnerAccount:          "owner-address",
		MinimumNominatorStake: dec(minStake),
	}
}

func TestValidateWithdrawalForcedFullBoundary(t *testing.T) {
	op := testOperator("10")
	total := dec("100")

	// remaining 5 < 10: forced full withdrawal
	result := ValidateWithdrawal(dec("95"), total, op, false)
	assert.True(t, result.IsValid)
	assert.True(t, result.WillWithdrawAll)
	require.NotNil(t, result.ActualWithdrawalAmount)
	assert.True(t, result.ActualWithdrawalAmount.Equal(total))
	assert.NotEmpty(t, result.Warning, "forced full withdrawal carries a warning")

	// remaining 15 >= 10: plain partial withdrawal
	result = ValidateWithdrawal(dec("85"), total, op, false)
	assert.True(t, result.IsValid)
	assert.False(t, result.WillWithdrawAll)
	assert.Empty(t, result.Warning)

	// remaining exactly the minimum is allowed
	result = ValidateWithdrawal(dec("90"), total, op, false)
	assert.True(t, result.IsValid)
	assert.False(t, result.WillWithdrawAll)
}

func TestValidateWithdrawalOwnerExemption(t *testing.T) {
	op := testOperator("10")

	result := ValidateWithdrawal(dec("95"), dec("100"), op, true)
	assert.True(t, result.IsValid)
	assert.False(t, result.WillWithdrawAll, "owners are never forced into a full withdrawal")
	assert.Empty(t, result.Warning)

	// an owner request covering the whole position is still reported as full
	result = ValidateWithdrawal(dec("100"), dec("100"), op, true)
	assert.True(t, result.IsValid)
	assert.True(t, result.WillWithdrawAll)
}

func TestValidateWithdrawalFullRequest(t *testing.T) {
	op := testOperator("10")

	for _, requested := range []string{"100", "150"} {
		result := ValidateWithdrawal(dec(requested), dec("100"), op, false)
		assert.True(t, result.IsValid)
		assert.True(t, result.WillWithdrawAll)
		require.NotNil(t, result.ActualWithdrawalAmount)
		assert.True(t, result.ActualWithdrawalAmount.Equal(dec("100")), "actual amount clamps to the position value")
	}
}

func TestValidateWithdrawalRejectsNonPositiveAmounts(t *testing.T) {
	op := testOperator("10")

	for _, requested := range []string{"0", "-5"} {
		result := ValidateWithdrawal(dec(requested), dec("100"), op, false)
		assert.False(t, result.IsValid, "requested %s must be rejected", requested)
		assert.NotEmpty(t, result.Warning)
		assert.False(t, result.WillWithdrawAll)
	}
}

func TestValidateWithdrawalIsPure(t *testing.T) {
	op := testOperator("10")
	first := ValidateWithdrawal(dec("95"), dec("100"), op, false)
	second := ValidateWithdrawal(dec("95"), dec("100"), op, false)
	assert.Equal(t, first.IsValid, second.IsValid)
	assert.Equal(t, first.WillWithdrawAll, second.WillWithdrawAll)
	assert.Equal(t, first.Warning, second.Warning)
}
