package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one row of the payments table. Rows are immutable after
// insert except for status.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	BillID        string          `db:"bill_id"`
	Reference     string          `db:"reference"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	Method        string          `db:"method"`
	Channel       string          `db:"channel"`
	TransactionID string          `db:"transaction_id"`
	Status        string          `db:"status"`
	ProcessedBy   string          `db:"processed_by"`
	Notes         string          `db:"notes"`
	PaymentDate   time.Time       `db:"payment_date"`
	CreatedAt     time.Time       `db:"created_at"`
}
