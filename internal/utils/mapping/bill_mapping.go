package mapping

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/models"
)

// ToDomainBill converts a bills row into the domain entity.
func ToDomainBill(m models.Bill) domain.Bill {
	d := domain.Bill{
		BillID:           m.BillID,
		BillType:         domain.AccountType(m.BillType),
		ReferenceID:      m.ReferenceID,
		BillingYear:      m.BillingYear,
		OldBill:          m.OldBill,
		PreviousPayments: m.PreviousPayments,
		Arrears:          m.Arrears,
		CurrentBill:      m.CurrentBill,
		AmountPayable:    m.AmountPayable,
		Status:           domain.BillStatus(m.Status),
		ServedStatus:     domain.ServedStatus(m.ServedStatus),
		DeliveryNotes:    m.DeliveryNotes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.ServedBy.Valid {
		v := m.ServedBy.String
		d.ServedBy = &v
	}
	if m.ServedAt.Valid {
		v := m.ServedAt.Time
		d.ServedAt = &v
	}
	return d
}
