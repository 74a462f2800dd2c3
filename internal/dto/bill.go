package dto

import (
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillResponse is a yearly bill as returned by the API.
type BillResponse struct {
	BillID           string          `json:"billID"`
	BillType         string          `json:"billType"`
	ReferenceID      string          `json:"referenceID"`
	BillingYear      int             `json:"billingYear"`
	OldBill          decimal.Decimal `json:"oldBill"`
	PreviousPayments decimal.Decimal `json:"previousPayments"`
	Arrears          decimal.Decimal `json:"arrears"`
	CurrentBill      decimal.Decimal `json:"currentBill"`
	AmountPayable    decimal.Decimal `json:"amountPayable"`
	Status           string          `json:"status"`
	ServedStatus     string          `json:"servedStatus"`
	ServedBy         *string         `json:"servedBy,omitempty"`
	ServedAt         *time.Time      `json:"servedAt,omitempty"`
	DeliveryNotes    string          `json:"deliveryNotes,omitempty"`
}

// ToBillResponse converts a domain.Bill.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:           b.BillID,
		BillType:         string(b.BillType),
		ReferenceID:      b.ReferenceID,
		BillingYear:      b.BillingYear,
		OldBill:          b.OldBill,
		PreviousPayments: b.PreviousPayments,
		Arrears:          b.Arrears,
		CurrentBill:      b.CurrentBill,
		AmountPayable:    b.AmountPayable,
		Status:           string(b.Status),
		ServedStatus:     string(b.ServedStatus),
		ServedBy:         b.ServedBy,
		ServedAt:         b.ServedAt,
		DeliveryNotes:    b.DeliveryNotes,
	}
}

// ListBillsResponse wraps an account's bills and delivery stats.
type ListBillsResponse struct {
	Bills        []BillResponse  `json:"bills"`
	TotalBills   int             `json:"totalBills"`
	ServedBills  int             `json:"servedBills"`
	DeliveryRate decimal.Decimal `json:"deliveryRate"`
}

// UpdateServingStatusRequest carries a delivery-status change for a bill.
type UpdateServingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof='Not Served' Served Attempted Returned"`
	Notes  string `json:"notes"`
}

// ServingStatusResponse mirrors the legacy AJAX contract field for field.
type ServingStatusResponse struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message"`
	Status   string     `json:"status"`
	ServedAt *time.Time `json:"served_at"`
	ServedBy *string    `json:"served_by"`
}
