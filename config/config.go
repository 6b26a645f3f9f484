package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	SendGridAPIKey    string
	NotifyFromEmail   string
	PlatformName      string
	BaseURL           string
	ReminderAfterDays int
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	days, err := strconv.Atoi(os.Getenv("REMINDER_AFTER_DAYS"))
	if err != nil || days <= 0 {
		days = 7
	}

	name := os.Getenv("PLATFORM_NAME")
	if name == "" {
		name = "SecureVoice"
	}

	return &Config{
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		NotifyFromEmail:   os.Getenv("NOTIFY_FROM_EMAIL"),
		PlatformName:      name,
		BaseURL:           os.Getenv("BASE_URL"),
		ReminderAfterDays: days,
	}

}
