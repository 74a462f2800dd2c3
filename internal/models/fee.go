package models

import (
	"github.com/shopspring/decimal"
)

// FeeStructure is one row of the business_fee_structure table.
type FeeStructure struct {
	FeeID        int64           `db:"fee_id"`
	BusinessType string          `db:"business_type"`
	Category     string          `db:"category"`
	FeeAmount    decimal.Decimal `db:"fee_amount"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
