package billing_test

import (
	"testing"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeAmountPayable(t *testing.T) {
	// New business with a 50.00 fee and no history owes exactly 50.00.
	got := billing.ComputeAmountPayable(dec("0"), dec("0"), dec("0"), dec("50.00"))
	assert.True(t, dec("50.00").Equal(got), "expected 50.00, got %s", got)

	// Previous payments reduce the payable.
	got = billing.ComputeAmountPayable(dec("100.00"), dec("30.00"), dec("20.00"), dec("50.00"))
	assert.True(t, dec("140.00").Equal(got), "expected 140.00, got %s", got)
}

func TestRemainingBalance_NeverNegative(t *testing.T) {
	assert.True(t, billing.RemainingBalance(dec("50"), dec("20")).Equal(dec("30")))
	assert.True(t, billing.RemainingBalance(dec("50"), dec("50")).IsZero())
	// Overpayment history must still clamp at zero.
	assert.True(t, billing.RemainingBalance(dec("50"), dec("75")).IsZero())
	assert.True(t, billing.RemainingBalance(dec("0"), dec("10")).IsZero())
}

func TestApplyPayment(t *testing.T) {
	remaining, fullyPaid := billing.ApplyPayment(dec("50.00"), dec("20.00"))
	assert.True(t, remaining.Equal(dec("30.00")))
	assert.False(t, fullyPaid)

	remaining, fullyPaid = billing.ApplyPayment(dec("50.00"), dec("50.00"))
	assert.True(t, remaining.IsZero())
	assert.True(t, fullyPaid)
}

func TestDeriveBalanceStatus(t *testing.T) {
	assert.Equal(t, domain.BalancePaid, billing.DeriveBalanceStatus(dec("0"), dec("50")))
	assert.Equal(t, domain.BalancePartial, billing.DeriveBalanceStatus(dec("30"), dec("20")))
	assert.Equal(t, domain.BalancePending, billing.DeriveBalanceStatus(dec("50"), dec("0")))
}

func TestDeliveryRate(t *testing.T) {
	assert.True(t, billing.DeliveryRate(0, 0).IsZero())
	assert.True(t, billing.DeliveryRate(1, 2).Equal(dec("50")))
	assert.True(t, billing.DeliveryRate(3, 3).Equal(dec("100")))
	assert.True(t, billing.DeliveryRate(1, 3).Equal(dec("33.33")))
}
