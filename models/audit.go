package models

import "time"

// AuditEvent is an immutable per-complaint history entry
type AuditEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Status    Status    `json:"status,omitempty"`
	Author    string    `json:"author,omitempty"`
}

// AuditRecord is an entry in the system-wide audit trail. Records are
// append-only and never edited or removed.
type AuditRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	Username    string    `json:"user"`
	UserID      string    `json:"userId,omitempty"`
	ComplaintID string    `json:"complaintId,omitempty"`
}

// Audit trail actions
const (
	ActionLogin        = "login"
	ActionLogout       = "logout"
	ActionStatusUpdate = "status_update"
	ActionDelete       = "delete_complaint"
	ActionExport       = "export_data"
	ActionUserCreated  = "user_created"
)
