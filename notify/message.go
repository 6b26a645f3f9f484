package notify

import (
	"fmt"
	"strings"
)

// BuildMessage renders the subject and plain-text body for a notification.
// Unknown kinds fall back to a generic update message.
func BuildMessage(platform string, kind Kind, p Payload) (subject, body string) {
	id := p["complaintID"]

	switch kind {
	case KindTrackingIDIssued:
		subject = fmt.Sprintf("Your %s Complaint Tracking ID", platform)
		body = strings.Join([]string{
			fmt.Sprintf("Thank you for submitting your complaint through %s.", platform),
			"",
			fmt.Sprintf("Your Complaint ID: %s", id),
			fmt.Sprintf("Submitted: %s at %s", p["date"], p["time"]),
			"",
			"Please save this ID to track your complaint status.",
			"You will receive email notifications when the status of your complaint changes.",
			"",
			"Your identity remains completely anonymous.",
			"",
			"Best regards,",
			fmt.Sprintf("%s Team", platform),
		}, "\n")
	case KindStatusChanged:
		subject = fmt.Sprintf("Status Update: Complaint %s", id)
		body = strings.Join([]string{
			"Your complaint status has been updated.",
			"",
			fmt.Sprintf("Complaint ID: %s", id),
			fmt.Sprintf("Previous Status: %s", strings.ToUpper(p["oldStatus"])),
			fmt.Sprintf("New Status: %s", strings.ToUpper(p["newStatus"])),
			"",
			"Best regards,",
			fmt.Sprintf("%s Team", platform),
		}, "\n")
	case KindCommentAdded:
		subject = fmt.Sprintf("New Update: Complaint %s", id)
		body = strings.Join([]string{
			"A new update has been added to your complaint.",
			"",
			fmt.Sprintf("Complaint ID: %s", id),
			fmt.Sprintf("Update: %s", p["comment"]),
			"",
			"Best regards,",
			fmt.Sprintf("%s Team", platform),
		}, "\n")
	case KindReminder:
		subject = fmt.Sprintf("Reminder: Complaint %s Pending Review", id)
		body = strings.Join([]string{
			fmt.Sprintf("Your complaint has been pending for %s days.", p["daysPending"]),
			"",
			fmt.Sprintf("Complaint ID: %s", id),
			"Status: PENDING",
			"",
			"We're working to address all complaints as quickly as possible.",
			"Your patience is appreciated.",
			"",
			"Best regards,",
			fmt.Sprintf("%s Team", platform),
		}, "\n")
	default:
		subject = fmt.Sprintf("Update: Complaint %s", id)
		body = fmt.Sprintf("There is an update on complaint %s.", id)
	}

	return subject, body
}
