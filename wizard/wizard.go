// Package wizard drives the four-step complaint submission flow: per-step
// validation, draft persistence and attachment staging. The flow is
// independent of the complaint workflow until submission.
package wizard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/securevoice/securevoice-core/attachments"
	"github.com/securevoice/securevoice-core/ids"
	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/notify"
	"github.com/securevoice/securevoice-core/stores"
)

// Step bounds
const (
	FirstStep = 1
	LastStep  = 4
)

// StepLabels name the four steps in order
var StepLabels = [LastStep]string{"Category", "Details", "Evidence", "Review"}

// Engine owns one submission flow at a time
type Engine struct {
	store    stores.ComplaintStore
	drafts   stores.DraftSlot
	notifier notify.Notifier

	mu     sync.Mutex
	step   int
	form   models.FormData
	staged []models.Attachment

	// counts attachment batches still being read; Submit waits for zero,
	// navigation does not
	inflight int
	idle     *sync.Cond
}

// New creates a wizard engine over the given store, draft slot and notifier
func New(store stores.ComplaintStore, drafts stores.DraftSlot, notifier notify.Notifier) *Engine {
	e := &Engine{store: store, drafts: drafts, notifier: notifier, step: FirstStep}
	e.idle = sync.NewCond(&e.mu)
	return e
}

// ValidateStep checks one step's field rules without touching engine state
func ValidateStep(step int, form models.FormData) models.ValidationErrors {
	return form.ValidateStep(step)
}

// Start resets the flow to step 1 with empty fields and no staged files. Any
// saved draft stays in its slot; use Resume to restore it or DiscardDraft to
// drop it.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.step = FirstStep
	e.form = models.FormData{}
	e.staged = nil
}

// HasSavedDraft reports whether a draft is available to resume
func (e *Engine) HasSavedDraft() bool {
	return e.drafts.HasDraft()
}

// Resume restores the saved draft's step, fields and staged attachments.
// Returns false when no draft is held.
func (e *Engine) Resume() bool {
	d, ok := e.drafts.Load()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.step = clampStep(d.Step)
	e.form = d.Form
	e.staged = append([]models.Attachment(nil), d.Files...)
	zap.S().Debugw("draft resumed", "step", e.step, "stagedFiles", len(e.staged))
	return true
}

// DiscardDraft drops any saved draft without touching the live flow
func (e *Engine) DiscardDraft() {
	e.drafts.Clear()
}

// Step returns the current step index
func (e *Engine) Step() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.step
}

// Form returns the current field set
func (e *Engine) Form() models.FormData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// SetForm replaces the current field set
func (e *Engine) SetForm(f models.FormData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form = f
}

// Staged returns a copy of the staged attachment list
func (e *Engine) Staged() []models.Attachment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Attachment(nil), e.staged...)
}

// Advance re-validates the current step and moves forward only when it
// passes; on failure all field errors are returned and the step is unchanged.
// Advancing past the last step is a no-op.
func (e *Engine) Advance() models.ValidationErrors {
	e.mu.Lock()
	defer e.mu.Unlock()

	if errs := e.form.ValidateStep(e.step); len(errs) > 0 {
		return errs
	}
	if e.step < LastStep {
		e.step++
	}
	return nil
}

// Retreat moves one step back without validating. Retreating below the first
// step is a no-op.
func (e *Engine) Retreat() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step > FirstStep {
		e.step--
	}
}

// AttachFiles runs the batch through the ingestion pipeline and appends the
// accepted files, in input order, to the staged list. Rejected files are
// reported individually. The call blocks until the whole batch has been read;
// use AttachFilesAsync to stage a batch without blocking the flow.
func (e *Engine) AttachFiles(ctx context.Context, uploads []attachments.Upload) ([]models.Attachment, []*models.IngestionError) {
	e.beginBatch()
	accepted, rejected := attachments.Process(ctx, uploads)
	e.endBatch(accepted)
	return accepted, rejected
}

// AttachFilesAsync stages the batch in the background. The batch is registered
// before the call returns, so a Submit issued afterwards waits for it; step
// navigation never does. The optional done callback receives the batch
// outcome once every file has been read.
func (e *Engine) AttachFilesAsync(ctx context.Context, uploads []attachments.Upload, done func([]models.Attachment, []*models.IngestionError)) {
	e.beginBatch()
	go func() {
		accepted, rejected := attachments.Process(ctx, uploads)
		e.endBatch(accepted)
		if done != nil {
			done(accepted, rejected)
		}
	}()
}

func (e *Engine) beginBatch() {
	e.mu.Lock()
	e.inflight++
	e.mu.Unlock()
}

// endBatch merges the accepted files into the staged list and wakes any
// Submit waiting for the flow to go idle
func (e *Engine) endBatch(accepted []models.Attachment) {
	e.mu.Lock()
	e.staged = append(e.staged, accepted...)
	e.inflight--
	if e.inflight == 0 {
		e.idle.Broadcast()
	}
	e.mu.Unlock()
}

// RemoveAttachment removes the staged file at the given position. An index
// out of range is a silent no-op.
func (e *Engine) RemoveAttachment(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.staged) {
		return
	}
	e.staged = append(e.staged[:index], e.staged[index+1:]...)
}

// SaveDraft snapshots the current step, fields and staged attachments into
// the single draft slot, overwriting any prior draft
func (e *Engine) SaveDraft() {
	e.mu.Lock()
	d := models.Draft{
		Step:    e.step,
		Form:    e.form,
		Files:   append([]models.Attachment(nil), e.staged...),
		SavedAt: time.Now(),
	}
	e.mu.Unlock()

	e.drafts.Save(d)
	zap.S().Debugw("draft saved", "step", d.Step, "stagedFiles", len(d.Files))
}

// Submit finalizes the flow into a new Complaint. The stored fields are
// re-validated against the step 1 and step 2 rules rather than trusted from
// earlier passes. On success the draft slot is cleared, the flow resets to
// step 1 and the new complaint's tracking ID is returned. On failure the
// error mapping is returned and nothing is stored.
func (e *Engine) Submit(ctx context.Context) (string, models.ValidationErrors) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// let any in-flight attachment batches land first
	for e.inflight > 0 {
		e.idle.Wait()
	}

	errs := models.ValidationErrors{}
	for step := FirstStep; step <= 2; step++ {
		for field, msg := range e.form.ValidateStep(step) {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return "", errs
	}

	now := time.Now()
	c := models.Complaint{
		ID:           ids.NewComplaintID(),
		Category:     models.Category(e.form.Category),
		Subject:      e.form.Subject,
		Description:  e.form.Description,
		Location:     e.form.Location,
		IncidentDate: e.form.IncidentDate,
		Priority:     models.Priority(e.form.Priority),
		Status:       models.StatusPending,
		Email:        e.form.Email,
		CreatedAt:    now,
		Attachments:  e.staged,
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

	e.store.Insert(c)

	if c.Email != "" {
		e.notifier.Notify(notify.KindTrackingIDIssued, c.Email, notify.Payload{
			"complaintID": c.ID,
			"date":        now.Format("January 2, 2006"),
			"time":        now.Format("03:04 PM"),
		})
	}

	e.drafts.Clear()
	e.step = FirstStep
	e.form = models.FormData{}
	e.staged = nil

	zap.S().Infow("complaint submitted", "complaintID", c.ID, "category", c.Category, "priority", c.Priority)
	return c.ID, nil
}

func clampStep(step int) int {
	if step < FirstStep {
		return FirstStep
	}
	if step > LastStep {
		return LastStep
	}
	return step
}
