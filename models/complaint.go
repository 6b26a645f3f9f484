package models

import "time"

// DefaultLocation is stored when the submitter leaves the location blank.
const DefaultLocation = "Not specified"

// Category classifies a complaint for routing and filtering
type Category string

// Valid complaint categories
const (
	CategoryHarassment     Category = "harassment"
	CategoryDiscrimination Category = "discrimination"
	CategorySafety         Category = "safety"
	CategoryEthics         Category = "ethics"
	CategoryOther          Category = "other"
)

// Categories lists every category a complaint may carry
var Categories = []Category{
	CategoryHarassment,
	CategoryDiscrimination,
	CategorySafety,
	CategoryEthics,
	CategoryOther,
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Priority marks how urgently a complaint needs attention
type Priority string

// Valid complaint priorities
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority a complaint may carry
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Rank returns the staff console sort rank. Urgent sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Status is a complaint's position in the review workflow
type Status string

// Workflow statuses
const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusResolved  Status = "resolved"
)

// Statuses lists the workflow states in their cycle order
var Statuses = []Status{StatusPending, StatusReviewing, StatusResolved}

// statusTransitions is the legacy workflow cycle. Resolved deliberately wraps
// back to pending rather than acting as a terminal state.
var statusTransitions = map[Status]Status{
	StatusPending:   StatusReviewing,
	StatusReviewing: StatusResolved,
	StatusResolved:  StatusPending,
}

// NextStatus returns the status that follows s in the workflow cycle
func NextStatus(s Status) Status {
	next, ok := statusTransitions[s]
	if !ok {
		return StatusPending
	}
	return next
}

// Complaint represents an anonymous report tracked through its lifecycle.
// Subject, description and category are fixed at creation; only the status,
// the comment list and the audit trail change afterwards.
type Complaint struct {
	ID           string       `json:"id"`
	Category     Category     `json:"category"`
	Subject      string       `json:"subject"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	IncidentDate string       `json:"incidentDate,omitempty"`
	Priority     Priority     `json:"priority"`
	Status       Status       `json:"status"`
	Email        string       `json:"email,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	Attachments  []Attachment `json:"attachments"`
	Comments     []Comment    `json:"comments"`
	Updates      []AuditEvent `json:"updates"`
}

// PublicComments returns only the comments visible on the public tracker
func (c *Complaint) PublicComments() []Comment {
	var out []Comment
	for _, cm := range c.Comments {
		if !cm.Internal {
			out = append(out, cm)
		}
	}
	return out
}
