package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/securevoice/securevoice-core/auth"
	"github.com/securevoice/securevoice-core/complaints"
	"github.com/securevoice/securevoice-core/config"
	"github.com/securevoice/securevoice-core/notify"
	"github.com/securevoice/securevoice-core/scheduler"
	"github.com/securevoice/securevoice-core/stores"
	"github.com/securevoice/securevoice-core/wizard"
)

func main() {
	// .env is optional; plain environment variables still apply
	_ = godotenv.Load()

	cfg := config.New()

	store := stores.NewComplaintStore()
	users := stores.NewUserStore()
	trail := stores.NewAuditTrail()
	drafts := stores.NewDraftSlot()

	auth.SeedUsers(users)
	session := auth.NewSession(users, trail)

	var notifier notify.Notifier
	if cfg.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.NotifyFromEmail, cfg.PlatformName)
	} else {
		zap.S().Warn("SENDGRID_API_KEY not set, notifications are recorded in memory only")
		notifier = notify.NewMemoryNotifier()
	}

	wiz := wizard.New(store, drafts, notifier)
	svc := complaints.NewService(store, session, notifier)

	reminders := scheduler.NewReminder(store, notifier, cfg.ReminderAfterDays)
	reminders.Start()
	defer reminders.Stop()

	zap.S().Infow("securevoice-core is up and running",
		"platform", cfg.PlatformName,
		"url", cfg.BaseURL,
	)

	console := newConsole(os.Stdin, os.Stdout, session, wiz, svc)
	console.run()
}
