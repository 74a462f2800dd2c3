package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a recorded payment.
// Payments are immutable after insert except for this field.
type PaymentStatus string

const (
	PaymentSuccessful PaymentStatus = "Successful"
	PaymentFailed     PaymentStatus = "Failed"
	PaymentPending    PaymentStatus = "Pending"
	PaymentReversed   PaymentStatus = "Reversed"
)

// PaymentMethod is how the money was collected.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodMobileMoney  PaymentMethod = "Mobile Money"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodOnline       PaymentMethod = "Online"
	MethodCheque       PaymentMethod = "Cheque"
)

// Payment is a collection recorded against exactly one bill.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	BillID        string          `json:"billID"`
	Reference     string          `json:"reference"` // PAY<YYYYMMDD><6 hex>
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Method        PaymentMethod   `json:"method"`
	Channel       string          `json:"channel,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	Status        PaymentStatus   `json:"status"`
	ProcessedBy   string          `json:"processedBy"` // UserID of the collecting officer
	Notes         string          `json:"notes,omitempty"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PaymentResult carries the post-transaction state back to the caller so the
// confirmation view can render without a second round trip.
type PaymentResult struct {
	Payment       Payment         `json:"payment"`
	BillStatus    BillStatus      `json:"billStatus"`
	BillRemaining decimal.Decimal `json:"billRemaining"`
	FullyPaid     bool            `json:"fullyPaid"`
}
