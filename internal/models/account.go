package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Business is one row of the businesses table.
type Business struct {
	ID            string          `db:"id"`
	AccountNumber string          `db:"account_number"`
	Name          string          `db:"name"`
	OwnerName     string          `db:"owner_name"`
	Telephone     string          `db:"telephone"`
	Email         string          `db:"email"`
	Location      string          `db:"location"`
	Latitude      sql.NullFloat64 `db:"latitude"`
	Longitude     sql.NullFloat64 `db:"longitude"`
	ZoneID        int64           `db:"zone_id"`
	SubZoneID     sql.NullInt64   `db:"sub_zone_id"`
	BusinessType  string          `db:"business_type"`
	Category      string          `db:"category"`
	Batch         string          `db:"batch"`

	OldBill          decimal.Decimal `db:"old_bill"`
	PreviousPayments decimal.Decimal `db:"previous_payments"`
	Arrears          decimal.Decimal `db:"arrears"`
	CurrentBill      decimal.Decimal `db:"current_bill"`
	AmountPayable    decimal.Decimal `db:"amount_payable"`

	Status string `db:"status"`
	AuditFields
}

// Property is one row of the properties table. The column set mirrors
// businesses apart from the type/category pair.
type Property struct {
	ID            string          `db:"id"`
	AccountNumber string          `db:"account_number"`
	Name          string          `db:"name"`
	OwnerName     string          `db:"owner_name"`
	Telephone     string          `db:"telephone"`
	Email         string          `db:"email"`
	Location      string          `db:"location"`
	Latitude      sql.NullFloat64 `db:"latitude"`
	Longitude     sql.NullFloat64 `db:"longitude"`
	ZoneID        int64           `db:"zone_id"`
	SubZoneID     sql.NullInt64   `db:"sub_zone_id"`
	PropertyType  string          `db:"property_type"`
	UsageCategory string          `db:"usage_category"`
	Batch         string          `db:"batch"`

	OldBill          decimal.Decimal `db:"old_bill"`
	PreviousPayments decimal.Decimal `db:"previous_payments"`
	Arrears          decimal.Decimal `db:"arrears"`
	CurrentBill      decimal.Decimal `db:"current_bill"`
	AmountPayable    decimal.Decimal `db:"amount_payable"`

	Status string `db:"status"`
	AuditFields
}
