package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// AuditSvcFacade defines read access to the audit trail. Entries are written
// by the mutating services themselves, never through this interface.
type AuditSvcFacade interface {
	// ListAuditLogs retrieves a filtered page of the audit trail. Admin only.
	ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error)
}
