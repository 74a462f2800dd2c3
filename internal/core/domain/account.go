package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType distinguishes the two billable account kinds.
type AccountType string

const (
	AccountTypeBusiness AccountType = "business"
	AccountTypeProperty AccountType = "property"
)

// AccountStatus is the lifecycle flag of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// Account is the common projection shared by businesses and properties.
// Search, payment and reporting flows operate on this shape instead of
// merging heterogeneous rows ad hoc.
type Account struct {
	ID            string          `json:"id"`
	AccountType   AccountType     `json:"accountType"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	OwnerName     string          `json:"ownerName"`
	Telephone     string          `json:"telephone"`
	Email         string          `json:"email"`
	Location      string          `json:"location"`
	Latitude      *float64        `json:"latitude,omitempty"`
	Longitude     *float64        `json:"longitude,omitempty"`
	ZoneID        int64           `json:"zoneID"`
	SubZoneID     *int64          `json:"subZoneID,omitempty"`
	Batch         string          `json:"batch,omitempty"`

	// Financial snapshot. AmountPayable is a denormalized running total:
	// seeded at registration and decremented only by the payment transaction.
	OldBill          decimal.Decimal `json:"oldBill"`
	PreviousPayments decimal.Decimal `json:"previousPayments"`
	Arrears          decimal.Decimal `json:"arrears"`
	CurrentBill      decimal.Decimal `json:"currentBill"`
	AmountPayable    decimal.Decimal `json:"amountPayable"`

	Status AccountStatus `json:"status"`
	AuditFields
}

// Business is a business account. Type and Category must match an active
// fee structure row at registration time.
type Business struct {
	Account
	BusinessType string `json:"businessType"`
	Category     string `json:"category"`
}

// Property is a property (real estate) account.
type Property struct {
	Account
	PropertyType  string `json:"propertyType"`
	UsageCategory string `json:"usageCategory"`
}

// BalanceStatus is the derived per-account payment state shown in search results.
type BalanceStatus string

const (
	BalancePaid    BalanceStatus = "paid"
	BalancePartial BalanceStatus = "partial"
	BalancePending BalanceStatus = "pending"
)

// AccountSearchResult is one search hit annotated with its lifetime balance.
type AccountSearchResult struct {
	Account
	ZoneName         string          `json:"zoneName"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	BalanceStatus    BalanceStatus   `json:"balanceStatus"`
}
