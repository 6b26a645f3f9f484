package notify

import (
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridNotifier delivers notifications through the SendGrid API
type SendGridNotifier struct {
	APIKey    string
	FromEmail string
	Platform  string
}

// NewSendGridNotifier creates a notifier backed by SendGrid
func NewSendGridNotifier(apiKey, fromEmail, platform string) *SendGridNotifier {
	return &SendGridNotifier{APIKey: apiKey, FromEmail: fromEmail, Platform: platform}
}

// Notify sends the email asynchronously. Delivery failures are logged and
// never surfaced to the caller.
func (n *SendGridNotifier) Notify(kind Kind, email string, payload Payload) {
	if email == "" {
		return
	}
	if n.APIKey == "" {
		zap.S().Errorw("SENDGRID_API_KEY not set, cannot send email", "email", email, "kind", kind)
		return
	}

	subject, body := BuildMessage(n.Platform, kind, payload)
	from := mail.NewEmail(n.Platform, n.FromEmail)
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, body, RenderEmail(n.Platform, subject, body))

	go func() {
		client := sendgrid.NewSendClient(n.APIKey)
		response, err := client.Send(message)
		if err != nil {
			zap.S().Errorw("failed to send notification email", "email", email, "kind", kind, "error", err)
			return
		}

		if response.StatusCode >= 200 && response.StatusCode < 300 {
			zap.S().Infow("notification email sent successfully", "email", email, "kind", kind, "statusCode", response.StatusCode)
		} else {
			zap.S().Warnw("notification email sent with non-2xx status", "email", email, "kind", kind, "statusCode", response.StatusCode, "body", response.Body)
		}
	}()
}
