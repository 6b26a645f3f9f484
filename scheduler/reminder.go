// Package scheduler runs the periodic background jobs for the complaint
// platform.
package scheduler

import (
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/notify"
	"github.com/securevoice/securevoice-core/stores"
)

// Reminder nudges submitters whose complaints sit unreviewed in pending
type Reminder struct {
	cron     *cron.Cron
	store    stores.ComplaintStore
	notifier notify.Notifier
	after    time.Duration
}

// NewReminder creates a reminder scheduler that sweeps complaints pending
// longer than afterDays
func NewReminder(store stores.ComplaintStore, notifier notify.Notifier, afterDays int) *Reminder {
	return &Reminder{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		store:    store,
		notifier: notifier,
		after:    time.Duration(afterDays) * 24 * time.Hour,
	}
}

// Start begins the scheduler with all registered jobs
func (r *Reminder) Start() {
	// Send pending-complaint reminders daily at 3 AM UTC
	_, err := r.cron.AddFunc("0 3 * * *", func() { r.Sweep(time.Now()) })
	if err != nil {
		zap.S().Errorw("failed to register reminder job", "error", err)
	}

	r.cron.Start()
	zap.S().Info("Reminder scheduler started")
}

// Stop gracefully stops the scheduler
func (r *Reminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Reminder scheduler stopped")
}

// Sweep fires one reminder per stale pending complaint that carries a
// notification email. Returns the number of reminders sent.
func (r *Reminder) Sweep(now time.Time) int {
	cutoff := now.Add(-r.after)

	sent := 0
	for _, c := range r.store.All() {
		if c.Status != models.StatusPending || c.Email == "" {
			continue
		}
		if c.CreatedAt.After(cutoff) {
			continue
		}

		daysPending := int(now.Sub(c.CreatedAt).Hours() / 24)
		r.notifier.Notify(notify.KindReminder, c.Email, notify.Payload{
			"complaintID": c.ID,
			"daysPending": strconv.Itoa(daysPending),
		})
		sent++
	}

	zap.S().Infow("Reminder sweep complete", "remindersSent", sent)
	return sent
}
