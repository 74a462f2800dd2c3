package mapping

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/models"
)

// ToDomainAuditLog converts an audit_logs row into the domain entity.
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditID:   m.AuditID,
		UserID:    m.UserID,
		Action:    domain.AuditAction(m.Action),
		TableName: m.TableName,
		RecordID:  m.RecordID,
		NewValues: m.NewValues,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelAuditLog converts the domain entity into an audit_logs row.
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditID:   d.AuditID,
		UserID:    d.UserID,
		Action:    string(d.Action),
		TableName: d.TableName,
		RecordID:  d.RecordID,
		NewValues: d.NewValues,
		IPAddress: d.IPAddress,
		UserAgent: d.UserAgent,
		CreatedAt: d.CreatedAt,
	}
}
