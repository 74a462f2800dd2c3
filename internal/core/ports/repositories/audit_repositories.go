package repositories

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// AuditLogFilter narrows an audit trail listing. Zero-valued fields are ignored.
type AuditLogFilter struct {
	Action    string
	TableName string
	RecordID  string
	UserID    string
}

// AuditReader defines read operations over the audit trail.
type AuditReader interface {
	// ListAuditLogs retrieves a page of audit entries matching the filter,
	// newest first, together with the total match count.
	ListAuditLogs(ctx context.Context, filter AuditLogFilter, limit, offset int) ([]domain.AuditLog, int64, error)
}

// AuditWriter defines write operations over the audit trail. Entries are
// append-only; there are no update or delete operations.
type AuditWriter interface {
	// SaveAuditLog appends one audit entry.
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error
}

// AuditRepositoryFacade combines all audit-related repository interfaces
type AuditRepositoryFacade interface {
	AuditReader
	AuditWriter
}
