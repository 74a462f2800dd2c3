package mapping

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/models"
)

// ToDomainBusiness converts a businesses row into the domain entity.
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		Account: domain.Account{
			ID:               m.ID,
			AccountType:      domain.AccountTypeBusiness,
			AccountNumber:    m.AccountNumber,
			Name:             m.Name,
			OwnerName:        m.OwnerName,
			Telephone:        m.Telephone,
			Email:            m.Email,
			Location:         m.Location,
			Latitude:         nullFloatToPtr(m.Latitude),
			Longitude:        nullFloatToPtr(m.Longitude),
			ZoneID:           m.ZoneID,
			SubZoneID:        nullInt64ToPtr(m.SubZoneID),
			Batch:            m.Batch,
			OldBill:          m.OldBill,
			PreviousPayments: m.PreviousPayments,
			Arrears:          m.Arrears,
			CurrentBill:      m.CurrentBill,
			AmountPayable:    m.AmountPayable,
			Status:           domain.AccountStatus(m.Status),
			AuditFields:      ToDomainAuditFields(m.AuditFields),
		},
		BusinessType: m.BusinessType,
		Category:     m.Category,
	}
}

// ToModelBusiness converts the domain entity into a businesses row.
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		ID:               d.ID,
		AccountNumber:    d.AccountNumber,
		Name:             d.Name,
		OwnerName:        d.OwnerName,
		Telephone:        d.Telephone,
		Email:            d.Email,
		Location:         d.Location,
		Latitude:         ptrToNullFloat(d.Latitude),
		Longitude:        ptrToNullFloat(d.Longitude),
		ZoneID:           d.ZoneID,
		SubZoneID:        ptrToNullInt64(d.SubZoneID),
		BusinessType:     d.BusinessType,
		Category:         d.Category,
		Batch:            d.Batch,
		OldBill:          d.OldBill,
		PreviousPayments: d.PreviousPayments,
		Arrears:          d.Arrears,
		CurrentBill:      d.CurrentBill,
		AmountPayable:    d.AmountPayable,
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProperty converts a properties row into the domain entity.
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		Account: domain.Account{
			ID:               m.ID,
			AccountType:      domain.AccountTypeProperty,
			AccountNumber:    m.AccountNumber,
			Name:             m.Name,
			OwnerName:        m.OwnerName,
			Telephone:        m.Telephone,
			Email:            m.Email,
			Location:         m.Location,
			Latitude:         nullFloatToPtr(m.Latitude),
			Longitude:        nullFloatToPtr(m.Longitude),
			ZoneID:           m.ZoneID,
			SubZoneID:        nullInt64ToPtr(m.SubZoneID),
			Batch:            m.Batch,
			OldBill:          m.OldBill,
			PreviousPayments: m.PreviousPayments,
			Arrears:          m.Arrears,
			CurrentBill:      m.CurrentBill,
			AmountPayable:    m.AmountPayable,
			Status:           domain.AccountStatus(m.Status),
			AuditFields:      ToDomainAuditFields(m.AuditFields),
		},
		PropertyType:  m.PropertyType,
		UsageCategory: m.UsageCategory,
	}
}

// ToModelProperty converts the domain entity into a properties row.
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		ID:               d.ID,
		AccountNumber:    d.AccountNumber,
		Name:             d.Name,
		OwnerName:        d.OwnerName,
		Telephone:        d.Telephone,
		Email:            d.Email,
		Location:         d.Location,
		Latitude:         ptrToNullFloat(d.Latitude),
		Longitude:        ptrToNullFloat(d.Longitude),
		ZoneID:           d.ZoneID,
		SubZoneID:        ptrToNullInt64(d.SubZoneID),
		PropertyType:     d.PropertyType,
		UsageCategory:    d.UsageCategory,
		Batch:            d.Batch,
		OldBill:          d.OldBill,
		PreviousPayments: d.PreviousPayments,
		Arrears:          d.Arrears,
		CurrentBill:      d.CurrentBill,
		AmountPayable:    d.AmountPayable,
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}
