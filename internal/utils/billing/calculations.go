package billing

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeAmountPayable derives the initial running total for a new account:
// old bill plus arrears plus current bill, less payments already made.
// Used once at registration; afterwards the payment transaction is the only
// writer of the running total.
func ComputeAmountPayable(oldBill, previousPayments, arrears, currentBill decimal.Decimal) decimal.Decimal {
	return oldBill.Add(arrears).Add(currentBill).Sub(previousPayments)
}

// RemainingBalance is the lifetime outstanding figure shown in search and
// reports: the account running total less all Successful payments across its
// bills, clamped at zero. This is display-only; the amount that gates a new
// payment is the target bill's own amount_payable.
func RemainingBalance(amountPayable, totalPaid decimal.Decimal) decimal.Decimal {
	balance := amountPayable.Sub(totalPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// ApplyPayment computes a bill's payable after a payment, clamped at zero,
// and reports whether the bill is now fully paid.
func ApplyPayment(billPayable, amount decimal.Decimal) (decimal.Decimal, bool) {
	remaining := billPayable.Sub(amount)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, true
	}
	return remaining, false
}

// DeriveBalanceStatus tags a search hit: paid when nothing remains, partial
// when something was paid but a balance remains, pending otherwise.
func DeriveBalanceStatus(remaining, totalPaid decimal.Decimal) domain.BalanceStatus {
	if remaining.LessThanOrEqual(decimal.Zero) {
		return domain.BalancePaid
	}
	if totalPaid.IsPositive() {
		return domain.BalancePartial
	}
	return domain.BalancePending
}

// DeliveryRate is served/total expressed as a percentage, zero when the
// account has no bills.
func DeliveryRate(servedBills, totalBills int) decimal.Decimal {
	if totalBills <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(servedBills)).
		Div(decimal.NewFromInt(int64(totalBills))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
