package stores

import (
	"sync"

	"github.com/securevoice/securevoice-core/models"
)

// AuditTrail is the append-only system-wide audit log. The underlying log is
// unbounded; consumers cap what they display.
type AuditTrail interface {
	Append(r models.AuditRecord)
	Recent(n int) []models.AuditRecord
	Len() int
}

type auditTrail struct {
	mu      sync.Mutex
	records []models.AuditRecord
}

// NewAuditTrail initializes a new instance of the audit trail
func NewAuditTrail() AuditTrail {
	return &auditTrail{}
}

func (t *auditTrail) Append(r models.AuditRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, r)
}

// Recent returns up to n records, most recent first
func (t *auditTrail) Recent(n int) []models.AuditRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n > len(t.records) {
		n = len(t.records)
	}
	out := make([]models.AuditRecord, 0, n)
	for i := len(t.records) - 1; i >= len(t.records)-n; i-- {
		out = append(out, t.records[i])
	}
	return out
}

func (t *auditTrail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
