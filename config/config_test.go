package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/securevoice/securevoice-core/config"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "")
	t.Setenv("PLATFORM_NAME", "")
	t.Setenv("REMINDER_AFTER_DAYS", "")

	cfg := config.New()
	assert.Equal(t, "SecureVoice", cfg.PlatformName)
	assert.Equal(t, 7, cfg.ReminderAfterDays)
	assert.Empty(t, cfg.SendGridAPIKey)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("NOTIFY_FROM_EMAIL", "noreply@example.com")
	t.Setenv("PLATFORM_NAME", "TrustLine")
	t.Setenv("BASE_URL", "https://trustline.example")
	t.Setenv("REMINDER_AFTER_DAYS", "3")

	cfg := config.New()
	assert.Equal(t, "SG.test", cfg.SendGridAPIKey)
	assert.Equal(t, "noreply@example.com", cfg.NotifyFromEmail)
	assert.Equal(t, "TrustLine", cfg.PlatformName)
	assert.Equal(t, "https://trustline.example", cfg.BaseURL)
	assert.Equal(t, 3, cfg.ReminderAfterDays)
}

func TestNewRejectsBadReminderDays(t *testing.T) {
	t.Setenv("REMINDER_AFTER_DAYS", "-4")
	assert.Equal(t, 7, config.New().ReminderAfterDays)

	t.Setenv("REMINDER_AFTER_DAYS", "soon")
	assert.Equal(t, 7, config.New().ReminderAfterDays)
}
