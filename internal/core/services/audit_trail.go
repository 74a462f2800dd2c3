package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/google/uuid"
)

// newAuditLog assembles an audit entry for a mutating action. The payload is
// snapshotted as JSON; a marshal failure is logged and the entry written with
// an empty object, because a broken snapshot must never abort the mutation
// it describes.
func newAuditLog(ctx context.Context, actor domain.Actor, action domain.AuditAction, tableName, recordID string, payload any, at time.Time) domain.AuditLog {
	newValues := "{}"
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Failed to marshal audit payload",
				"action", string(action), "record_id", recordID, "error", err.Error())
		} else {
			newValues = string(b)
		}
	}
	return domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		NewValues: newValues,
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
		CreatedAt: at,
	}
}
