// Package complaints implements the staff triage operations: status cycling,
// comments, deletion, export snapshots and the direct quick-submit path.
package complaints

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/securevoice/securevoice-core/auth"
	"github.com/securevoice/securevoice-core/ids"
	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/notify"
	"github.com/securevoice/securevoice-core/query"
	"github.com/securevoice/securevoice-core/stores"
)

// Service performs the role-gated operations on the complaint store
type Service struct {
	Store    stores.ComplaintStore
	Session  *auth.Session
	Notifier notify.Notifier
}

// NewService creates a triage service
func NewService(store stores.ComplaintStore, session *auth.Session, notifier notify.Notifier) *Service {
	return &Service{Store: store, Session: session, Notifier: notifier}
}

// UpdateStatus advances the complaint one step along the workflow cycle and
// appends the matching audit entry. Gated by edit; a denied attempt changes
// nothing and records nothing.
func (s *Service) UpdateStatus(id string) (models.Status, error) {
	if err := s.Session.Authorize(models.CapabilityEdit); err != nil {
		return "", err
	}

	c, ok := s.Store.FindByID(id)
	if !ok {
		return "", models.ErrNotFound
	}

	old := c.Status
	c.Status = models.NextStatus(old)

	// the edit gate above guarantees an actor
	actor, _ := s.Session.Current()
	author := actor.Username

	detail := fmt.Sprintf("Status changed from %s to %s", old, c.Status)
	c.Updates = append(c.Updates, models.AuditEvent{
		Timestamp: time.Now(),
		Status:    c.Status,
		Message:   detail,
		Author:    author,
	})
	s.Store.Update(c)

	if c.Email != "" {
		s.Notifier.Notify(notify.KindStatusChanged, c.Email, notify.Payload{
			"complaintID": c.ID,
			"oldStatus":   string(old),
			"newStatus":   string(c.Status),
		})
	}

	s.Session.Record(models.ActionStatusUpdate, detail, c.ID)
	zap.S().Infow("complaint status updated", "complaintID", c.ID, "from", old, "to", c.Status, "by", author)
	return c.Status, nil
}

// AddComment appends a comment and its audit entry to the complaint. Gated by
// edit. An unknown ID yields ErrNotFound rather than any hard failure. A
// public comment triggers a notification when an email is on file.
func (s *Service) AddComment(id, text string, internal bool) (models.Comment, error) {
	if err := s.Session.Authorize(models.CapabilityEdit); err != nil {
		return models.Comment{}, err
	}

	c, ok := s.Store.FindByID(id)
	if !ok {
		return models.Comment{}, models.ErrNotFound
	}

	actor, _ := s.Session.Current()
	author := actor.Name

	now := time.Now()
	comment := models.Comment{
		ID:        ids.NewID(),
		Text:      text,
		Author:    author,
		Internal:  internal,
		CreatedAt: now,
	}
	c.Comments = append(c.Comments, comment)

	message := "Update added"
	if internal {
		message = "Internal note added"
	}
	c.Updates = append(c.Updates, models.AuditEvent{
		Timestamp: now,
		Message:   message,
		Author:    author,
	})
	s.Store.Update(c)

	if !internal && c.Email != "" {
		s.Notifier.Notify(notify.KindCommentAdded, c.Email, notify.Payload{
			"complaintID": c.ID,
			"comment":     text,
		})
	}

	zap.S().Infow("comment added", "complaintID", c.ID, "internal", internal, "by", author)
	return comment, nil
}

// Delete removes a complaint permanently. Gated by delete; destructive with
// no recovery, so callers confirm out of band first.
func (s *Service) Delete(id string) error {
	if err := s.Session.Authorize(models.CapabilityDelete); err != nil {
		return err
	}

	if !s.Store.Delete(id) {
		return models.ErrNotFound
	}

	s.Session.Record(models.ActionDelete, "Complaint deleted: "+id, id)
	zap.S().Infow("complaint deleted", "complaintID", id)
	return nil
}

// QuickSubmit is the single-form submission path that bypasses the wizard.
// The same step 1 and step 2 field rules apply.
func (s *Service) QuickSubmit(form models.FormData) (string, models.ValidationErrors) {
	errs := models.ValidationErrors{}
	for step := 1; step <= 2; step++ {
		for field, msg := range form.ValidateStep(step) {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return "", errs
	}

	now := time.Now()
	c := models.Complaint{
		ID:           ids.NewComplaintID(),
		Category:     models.Category(form.Category),
		Subject:      form.Subject,
		Description:  form.Description,
		Location:     form.Location,
		IncidentDate: form.IncidentDate,
		Priority:     models.Priority(form.Priority),
		Status:       models.StatusPending,
		Email:        form.Email,
		CreatedAt:    now,
		Updates: []models.AuditEvent{{
			Timestamp: now,
			Status:    models.StatusPending,
			Message:   "Complaint submitted",
		}},
	}
	if c.Location == "" {
		c.Location = models.DefaultLocation
	}
	if !c.Priority.Valid() {
		c.Priority = models.PriorityMedium
	}

	s.Store.Insert(c)

	if c.Email != "" {
		s.Notifier.Notify(notify.KindTrackingIDIssued, c.Email, notify.Payload{
			"complaintID": c.ID,
			"date":        now.Format("January 2, 2006"),
			"time":        now.Format("03:04 PM"),
		})
	}

	zap.S().Infow("complaint submitted", "complaintID", c.ID, "category", c.Category, "priority", c.Priority)
	return c.ID, nil
}

// Track is the public tracker lookup. Internal comments are stripped; an
// unknown ID is an explicit not-found result, never an error.
func (s *Service) Track(id string) (models.Complaint, bool) {
	c, ok := s.Store.FindByID(id)
	if !ok {
		return models.Complaint{}, false
	}
	c.Comments = c.PublicComments()
	return c, true
}

// ExportRow is the flat complaint snapshot handed to export collaborators.
// Output formatting (CSV, JSON, ...) is their concern.
type ExportRow struct {
	ID          string
	Category    string
	Subject     string
	Description string
	Location    string
	Priority    string
	Status      string
	Date        string
	Time        string
	Files       int
	Comments    int
}

// ExportRows returns the flat snapshot of every complaint. Gated by export.
func (s *Service) ExportRows() ([]ExportRow, error) {
	if err := s.Session.Authorize(models.CapabilityExport); err != nil {
		return nil, err
	}

	all := s.Store.All()
	rows := make([]ExportRow, 0, len(all))
	for _, c := range all {
		rows = append(rows, ExportRow{
			ID:          c.ID,
			Category:    string(c.Category),
			Subject:     c.Subject,
			Description: c.Description,
			Location:    c.Location,
			Priority:    string(c.Priority),
			Status:      string(c.Status),
			Date:        c.CreatedAt.Format("January 2, 2006"),
			Time:        c.CreatedAt.Format("03:04 PM"),
			Files:       len(c.Attachments),
			Comments:    len(c.Comments),
		})
	}

	s.Session.Record(models.ActionExport, "Exported "+strconv.Itoa(len(rows))+" complaints", "")
	return rows, nil
}

// Stats returns the analytics snapshot. Gated by view_analytics.
func (s *Service) Stats() (query.Stats, error) {
	if err := s.Session.Authorize(models.CapabilityViewAnalytics); err != nil {
		return query.Stats{}, err
	}
	return query.ComputeStats(s.Store.All(), time.Now()), nil
}
