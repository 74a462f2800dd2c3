package dto

import (
	"fmt"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a collection
// against a bill. Amount and method are validated in the service so that
// decimal zero-values get a proper validation error rather than a bind error.
type RecordPaymentRequest struct {
	BillID        string          `json:"billID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method" binding:"required,oneof=Cash 'Mobile Money' 'Bank Transfer' Online Cheque"`
	Channel       string          `json:"channel"`
	TransactionID string          `json:"transactionID"`
	Notes         string          `json:"notes"`
}

// PaymentResponse is a recorded payment as returned by the API.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	BillID        string          `json:"billID"`
	Reference     string          `json:"reference"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Method        string          `json:"method"`
	Channel       string          `json:"channel,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	Status        string          `json:"status"`
	ProcessedBy   string          `json:"processedBy"`
	Notes         string          `json:"notes,omitempty"`
	PaymentDate   time.Time       `json:"paymentDate"`
}

// ToPaymentResponse converts a domain.Payment.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		BillID:        p.BillID,
		Reference:     p.Reference,
		AmountPaid:    p.AmountPaid,
		Method:        string(p.Method),
		Channel:       p.Channel,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		ProcessedBy:   p.ProcessedBy,
		Notes:         p.Notes,
		PaymentDate:   p.PaymentDate,
	}
}

// PaymentResultResponse is the confirmation payload after recording a payment.
type PaymentResultResponse struct {
	Payment       PaymentResponse `json:"payment"`
	BillStatus    string          `json:"billStatus"`
	BillRemaining decimal.Decimal `json:"billRemaining"`
	FullyPaid     bool            `json:"fullyPaid"`
	Message       string          `json:"message"`
}

// ToPaymentResultResponse converts a domain.PaymentResult. The message is the
// receipt line shown to the collecting officer.
func ToPaymentResultResponse(r *domain.PaymentResult) PaymentResultResponse {
	message := fmt.Sprintf("Payment of %s recorded, reference %s. Remaining balance %s.",
		utils.FormatCurrency(r.Payment.AmountPaid), r.Payment.Reference, utils.FormatCurrency(r.BillRemaining))
	if r.FullyPaid {
		message = fmt.Sprintf("Payment of %s recorded, reference %s. Bill fully paid.",
			utils.FormatCurrency(r.Payment.AmountPaid), r.Payment.Reference)
	}
	return PaymentResultResponse{
		Payment:       ToPaymentResponse(&r.Payment),
		BillStatus:    string(r.BillStatus),
		BillRemaining: r.BillRemaining,
		FullyPaid:     r.FullyPaid,
		Message:       message,
	}
}

// ListBillPaymentsParams defines query parameters for listing a bill's payments.
type ListBillPaymentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
