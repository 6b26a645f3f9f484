package models

import (
	"fmt"
	"strings"
	"time"
)

// Field length rules enforced at creation
const (
	MinSubjectLength     = 5
	MinDescriptionLength = 20
	MaxDescriptionLength = 1000
)

// FormData is the wizard's partially filled field set. All values are kept as
// entered; validation decides what is acceptable per step.
type FormData struct {
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	IncidentDate string `json:"incident_date"`
	Email        string `json:"email"`
}

// ValidateStep checks the field rules for one wizard step and returns a
// field-to-message mapping for every violated rule. Steps 3 and 4 carry only
// optional fields and always pass.
func (f FormData) ValidateStep(step int) ValidationErrors {
	errs := ValidationErrors{}

	switch step {
	case 1:
		if strings.TrimSpace(f.Category) == "" {
			errs["category"] = "Please select a category"
		} else if !Category(f.Category).Valid() {
			errs["category"] = "Please select a valid category"
		}
	case 2:
		if len(strings.TrimSpace(f.Subject)) < MinSubjectLength {
			errs["subject"] = fmt.Sprintf("Subject must be at least %d characters", MinSubjectLength)
		}
		if len(strings.TrimSpace(f.Description)) < MinDescriptionLength {
			errs["description"] = fmt.Sprintf("Description must be at least %d characters", MinDescriptionLength)
		}
		// long descriptions are rejected, never truncated
		if len(f.Description) > MaxDescriptionLength {
			errs["description"] = fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLength)
		}
	}

	return errs
}

// Draft is a transient snapshot of an unsubmitted wizard flow. At most one
// draft is held at a time; every save overwrites the previous one.
type Draft struct {
	Step    int          `json:"step"`
	Form    FormData     `json:"data"`
	Files   []Attachment `json:"files"`
	SavedAt time.Time    `json:"savedAt"`
}
