package mapping

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/models"
)

// ToDomainFeeStructure converts a business_fee_structure row into the domain entity.
func ToDomainFeeStructure(m models.FeeStructure) domain.FeeStructure {
	return domain.FeeStructure{
		FeeID:        m.FeeID,
		BusinessType: m.BusinessType,
		Category:     m.Category,
		FeeAmount:    m.FeeAmount,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFeeStructure converts the domain entity into a business_fee_structure row.
func ToModelFeeStructure(d domain.FeeStructure) models.FeeStructure {
	return models.FeeStructure{
		FeeID:        d.FeeID,
		BusinessType: d.BusinessType,
		Category:     d.Category,
		FeeAmount:    d.FeeAmount,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}
