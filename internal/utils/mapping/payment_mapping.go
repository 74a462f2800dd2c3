package mapping

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/models"
)

// ToDomainPayment converts a payments row into the domain entity.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		BillID:        m.BillID,
		Reference:     m.Reference,
		AmountPaid:    m.AmountPaid,
		Method:        domain.PaymentMethod(m.Method),
		Channel:       m.Channel,
		TransactionID: m.TransactionID,
		Status:        domain.PaymentStatus(m.Status),
		ProcessedBy:   m.ProcessedBy,
		Notes:         m.Notes,
		PaymentDate:   m.PaymentDate,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelPayment converts the domain entity into a payments row.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		BillID:        d.BillID,
		Reference:     d.Reference,
		AmountPaid:    d.AmountPaid,
		Method:        string(d.Method),
		Channel:       d.Channel,
		TransactionID: d.TransactionID,
		Status:        string(d.Status),
		ProcessedBy:   d.ProcessedBy,
		Notes:         d.Notes,
		PaymentDate:   d.PaymentDate,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainPaymentSlice converts a slice of payments rows.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}
