package models

import (
	"time"
)

// AuditLog is one row of the append-only audit_logs table.
type AuditLog struct {
	AuditID   string    `db:"audit_id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	TableName string    `db:"table_name"`
	RecordID  string    `db:"record_id"`
	NewValues string    `db:"new_values"` // JSONB
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
}
