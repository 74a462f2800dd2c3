package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
)

type auditService struct {
	auditRepo portsrepo.AuditReader
}

// NewAuditService creates the audit trail service.
func NewAuditService(auditRepo portsrepo.AuditReader) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// ListAuditLogs retrieves a filtered page of the audit trail, newest first.
func (s *auditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	filter := portsrepo.AuditLogFilter{
		Action:    params.Action,
		TableName: params.TableName,
		RecordID:  params.RecordID,
		UserID:    params.UserID,
	}

	logs, total, err := s.auditRepo.ListAuditLogs(ctx, filter, limit, offset)
	if err != nil {
		logger.Error("Failed to list audit logs", slog.String("error", err.Error()))
		return nil, err
	}

	resp := &dto.ListAuditLogsResponse{Logs: make([]dto.AuditLogResponse, 0, len(logs)), Total: total}
	for _, log := range logs {
		resp.Logs = append(resp.Logs, dto.ToAuditLogResponse(log))
	}
	return resp, nil
}
