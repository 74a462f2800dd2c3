package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Bill is one row of the bills table.
type Bill struct {
	BillID      string `db:"bill_id"`
	BillType    string `db:"bill_type"` // business | property
	ReferenceID string `db:"reference_id"`
	BillingYear int    `db:"billing_year"`

	OldBill          decimal.Decimal `db:"old_bill"`
	PreviousPayments decimal.Decimal `db:"previous_payments"`
	Arrears          decimal.Decimal `db:"arrears"`
	CurrentBill      decimal.Decimal `db:"current_bill"`
	AmountPayable    decimal.Decimal `db:"amount_payable"`

	Status string `db:"status"`

	ServedStatus  string         `db:"served_status"`
	ServedBy      sql.NullString `db:"served_by"`
	ServedAt      sql.NullTime   `db:"served_at"`
	DeliveryNotes string         `db:"delivery_notes"`

	AuditFields
}
