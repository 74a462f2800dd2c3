package domain

import "github.com/shopspring/decimal"

// FeeStructure maps (business_type, category) to the yearly fee charged at
// registration. Consulted to validate registrations and auto-fill the
// current bill; only admins may change it.
type FeeStructure struct {
	FeeID        int64           `json:"feeID"`
	BusinessType string          `json:"businessType"`
	Category     string          `json:"category"`
	FeeAmount    decimal.Decimal `json:"feeAmount"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
