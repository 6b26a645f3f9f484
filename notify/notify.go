// Package notify delivers the fire-and-forget notifications triggered by the
// complaint lifecycle. The core never consumes a delivery result.
package notify

// Kind identifies a notification trigger point
type Kind string

// Notification kinds used by the core
const (
	KindTrackingIDIssued Kind = "tracking_id_issued"
	KindStatusChanged    Kind = "status_changed"
	KindCommentAdded     Kind = "comment_added"
	KindReminder         Kind = "reminder"
)

// Payload carries the template fields for one notification
type Payload map[string]string

// Notifier sends a notification to the given email address. Implementations
// must not block the caller and must not surface delivery errors to it.
type Notifier interface {
	Notify(kind Kind, email string, payload Payload)
}
