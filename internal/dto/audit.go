package dto

import (
	"encoding/json"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// ListAuditLogsParams filters the audit trail.
type ListAuditLogsParams struct {
	Action    string `form:"action"`
	TableName string `form:"tableName"`
	RecordID  string `form:"recordID"`
	UserID    string `form:"userID"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
}

// AuditLogResponse is one audit trail entry.
type AuditLogResponse struct {
	AuditID   string          `json:"auditID"`
	UserID    string          `json:"userID"`
	Action    string          `json:"action"`
	TableName string          `json:"tableName"`
	RecordID  string          `json:"recordID"`
	NewValues json.RawMessage `json:"newValues,omitempty"`
	IPAddress string          `json:"ipAddress,omitempty"`
	UserAgent string          `json:"userAgent,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToAuditLogResponse converts a domain.AuditLog.
func ToAuditLogResponse(l domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditID:   l.AuditID,
		UserID:    l.UserID,
		Action:    string(l.Action),
		TableName: l.TableName,
		RecordID:  l.RecordID,
		NewValues: json.RawMessage(l.NewValues),
		IPAddress: l.IPAddress,
		UserAgent: l.UserAgent,
		CreatedAt: l.CreatedAt,
	}
}

// ListAuditLogsResponse wraps a page of audit entries.
type ListAuditLogsResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}
