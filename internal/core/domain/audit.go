package domain

import "time"

// AuditAction tags the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	ActionCreateBusiness       AuditAction = "CREATE_BUSINESS"
	ActionCreateProperty       AuditAction = "CREATE_PROPERTY"
	ActionDeactivateBusiness   AuditAction = "DEACTIVATE_BUSINESS"
	ActionDeactivateProperty   AuditAction = "DEACTIVATE_PROPERTY"
	ActionPaymentRecorded      AuditAction = "PAYMENT_RECORDED"
	ActionBillFullyPaid        AuditAction = "BILL_FULLY_PAID"
	ActionServingStatusUpdated AuditAction = "SERVING_STATUS_UPDATED"
	ActionFeeStructureUpdated  AuditAction = "FEE_STRUCTURE_UPDATED"
	ActionCreateUser           AuditAction = "CREATE_USER"
	ActionUpdateUser           AuditAction = "UPDATE_USER"
)

// Actor identifies who performed a mutating action and from where, for the
// audit trail.
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}

// AuditLog is one append-only record of a mutating action. The application
// never updates or deletes rows of this type.
type AuditLog struct {
	AuditID   string      `json:"auditID"`
	UserID    string      `json:"userID"`
	Action    AuditAction `json:"action"`
	TableName string      `json:"tableName"`
	RecordID  string      `json:"recordID"`
	NewValues string      `json:"newValues"` // JSON snapshot of the row(s) after the action
	IPAddress string      `json:"ipAddress,omitempty"`
	UserAgent string      `json:"userAgent,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
