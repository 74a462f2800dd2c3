package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the payment lifecycle of a yearly bill.
type BillStatus string

const (
	BillPending       BillStatus = "Pending"
	BillPartiallyPaid BillStatus = "Partially Paid"
	BillPaid          BillStatus = "Paid"
	BillOverdue       BillStatus = "Overdue"
)

// ServedStatus tracks physical delivery of the printed bill, independent of
// payment status. It is a flat field: any value is reachable from any other.
type ServedStatus string

const (
	ServedStatusNotServed ServedStatus = "Not Served"
	ServedStatusServed    ServedStatus = "Served"
	ServedStatusAttempted ServedStatus = "Attempted"
	ServedStatusReturned  ServedStatus = "Returned"
)

// ValidServedStatus reports whether s is one of the recognised delivery states.
func ValidServedStatus(s ServedStatus) bool {
	switch s {
	case ServedStatusNotServed, ServedStatusServed, ServedStatusAttempted, ServedStatusReturned:
		return true
	}
	return false
}

// Bill is the per-year billing record for one account, addressed by
// (BillType, ReferenceID). AmountPayable is the authoritative remaining
// balance for this billing year and gates how much a payment may take.
type Bill struct {
	BillID      string      `json:"billID"`
	BillType    AccountType `json:"billType"`
	ReferenceID string      `json:"referenceID"` // businesses.id or properties.id
	BillingYear int         `json:"billingYear"`

	OldBill          decimal.Decimal `json:"oldBill"`
	PreviousPayments decimal.Decimal `json:"previousPayments"`
	Arrears          decimal.Decimal `json:"arrears"`
	CurrentBill      decimal.Decimal `json:"currentBill"`
	AmountPayable    decimal.Decimal `json:"amountPayable"`

	Status BillStatus `json:"status"`

	ServedStatus  ServedStatus `json:"servedStatus"`
	ServedBy      *string      `json:"servedBy,omitempty"`
	ServedAt      *time.Time   `json:"servedAt,omitempty"`
	DeliveryNotes string       `json:"deliveryNotes,omitempty"`

	AuditFields
}

// DeliveryStats summarises bill-serving progress for one account.
type DeliveryStats struct {
	TotalBills   int             `json:"totalBills"`
	ServedBills  int             `json:"servedBills"`
	DeliveryRate decimal.Decimal `json:"deliveryRate"` // served/total * 100
}
