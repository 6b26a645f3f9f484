package wizard_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevoice/securevoice-core/attachments"
	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/notify"
	"github.com/securevoice/securevoice-core/stores"
	"github.com/securevoice/securevoice-core/wizard"
)

type fixture struct {
	engine   *wizard.Engine
	store    stores.ComplaintStore
	drafts   stores.DraftSlot
	notifier *notify.MemoryNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := stores.NewComplaintStore()
	drafts := stores.NewDraftSlot()
	notifier := notify.NewMemoryNotifier()
	return &fixture{
		engine:   wizard.New(store, drafts, notifier),
		store:    store,
		drafts:   drafts,
		notifier: notifier,
	}
}

func validForm() models.FormData {
	return models.FormData{
		Category:    "safety",
		Priority:    "high",
		Subject:     "Broken elevator",
		Description: strings.Repeat("x", 25),
	}
}

func pngUpload(name string, size int64) attachments.Upload {
	return attachments.Upload{
		Name:        name,
		ContentType: "image/png",
		Size:        size,
		Content:     strings.NewReader("png-bytes"),
	}
}

func TestAdvanceRefusesInvalidStep(t *testing.T) {
	f := newFixture(t)

	errs := f.engine.Advance()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "category")
	assert.Equal(t, 1, f.engine.Step())

	f.engine.SetForm(models.FormData{Category: "safety"})
	assert.Empty(t, f.engine.Advance())
	assert.Equal(t, 2, f.engine.Step())
}

func TestAdvanceClampsAtLastStep(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(validForm())

	for i := 0; i < 10; i++ {
		assert.Empty(t, f.engine.Advance())
	}
	assert.Equal(t, wizard.LastStep, f.engine.Step())
}

func TestRetreatNeverValidatesAndClamps(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(validForm())
	require.Empty(t, f.engine.Advance())
	require.Equal(t, 2, f.engine.Step())

	// invalid fields do not block moving backward
	f.engine.SetForm(models.FormData{})
	f.engine.Retreat()
	assert.Equal(t, 1, f.engine.Step())

	f.engine.Retreat()
	assert.Equal(t, 1, f.engine.Step())
}

func TestAttachFilesPartialBatch(t *testing.T) {
	f := newFixture(t)

	accepted, rejected := f.engine.AttachFiles(context.Background(), []attachments.Upload{
		pngUpload("a.png", 5<<20),
		pngUpload("b.png", 15<<20),
	})

	require.Len(t, accepted, 1)
	assert.Equal(t, "a.png", accepted[0].Name)
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0].Reason, "10MB")

	// staged list grows by exactly one
	assert.Len(t, f.engine.Staged(), 1)
}

func TestRemoveAttachment(t *testing.T) {
	f := newFixture(t)
	f.engine.AttachFiles(context.Background(), []attachments.Upload{
		pngUpload("a.png", 10),
		pngUpload("b.png", 10),
	})

	f.engine.RemoveAttachment(0)
	staged := f.engine.Staged()
	require.Len(t, staged, 1)
	assert.Equal(t, "b.png", staged[0].Name)

	// out of range is a silent no-op
	f.engine.RemoveAttachment(5)
	f.engine.RemoveAttachment(-1)
	assert.Len(t, f.engine.Staged(), 1)
}

func TestSaveDraftResumeRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(validForm())
	require.Empty(t, f.engine.Advance())
	f.engine.AttachFiles(context.Background(), []attachments.Upload{pngUpload("a.png", 10)})

	f.engine.SaveDraft()
	require.True(t, f.engine.HasSavedDraft())

	// a fresh start wipes the live flow but keeps the slot
	f.engine.Start()
	assert.Equal(t, 1, f.engine.Step())
	assert.Empty(t, f.engine.Staged())
	assert.True(t, f.engine.HasSavedDraft())

	require.True(t, f.engine.Resume())
	assert.Equal(t, 2, f.engine.Step())
	assert.Equal(t, validForm(), f.engine.Form())
	staged := f.engine.Staged()
	require.Len(t, staged, 1)
	assert.Equal(t, "a.png", staged[0].Name)
}

func TestDiscardDraft(t *testing.T) {
	f := newFixture(t)
	f.engine.SaveDraft()
	require.True(t, f.engine.HasSavedDraft())

	f.engine.DiscardDraft()
	assert.False(t, f.engine.HasSavedDraft())
	assert.False(t, f.engine.Resume())
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(models.FormData{
		Category:    "safety",
		Subject:     "Broken elevator",
		Description: strings.Repeat("x", 25),
	})
	f.engine.SaveDraft()

	id, errs := f.engine.Submit(context.Background())
	require.Empty(t, errs)
	assert.True(t, strings.HasPrefix(id, "C"))

	c, ok := f.store.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, models.CategorySafety, c.Category)
	assert.Equal(t, models.DefaultLocation, c.Location)
	// priority defaults to medium when unset
	assert.Equal(t, models.PriorityMedium, c.Priority)
	assert.Empty(t, c.Attachments)
	require.Len(t, c.Updates, 1)
	assert.Equal(t, "Complaint submitted", c.Updates[0].Message)

	// draft slot cleared, wizard reset
	assert.False(t, f.engine.HasSavedDraft())
	assert.Equal(t, 1, f.engine.Step())
	assert.Equal(t, models.FormData{}, f.engine.Form())

	// no email, no notification
	assert.Empty(t, f.notifier.Sent())
}

func TestSubmitSendsTrackingNotification(t *testing.T) {
	f := newFixture(t)
	form := validForm()
	form.Email = "anon@example.com"
	f.engine.SetForm(form)

	id, errs := f.engine.Submit(context.Background())
	require.Empty(t, errs)

	sent := f.notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.KindTrackingIDIssued, sent[0].Kind)
	assert.Equal(t, "anon@example.com", sent[0].Email)
	assert.Equal(t, id, sent[0].Payload["complaintID"])
}

func TestSubmitRevalidatesAndMutatesNothing(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(models.FormData{Category: "safety", Subject: "Hi", Description: "too short"})

	id, errs := f.engine.Submit(context.Background())
	assert.Empty(t, id)
	assert.Contains(t, errs, "subject")
	assert.Contains(t, errs, "description")

	assert.Equal(t, 0, f.store.Len())
	assert.Empty(t, f.notifier.Sent())
}

// slowReader delays its first read to keep an ingestion batch in flight
type slowReader struct {
	data  *strings.Reader
	delay time.Duration
	once  sync.Once
}

func (r *slowReader) Read(p []byte) (int, error) {
	r.once.Do(func() { time.Sleep(r.delay) })
	return r.data.Read(p)
}

func TestSubmitWaitsForInFlightBatch(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(validForm())

	up := attachments.Upload{
		Name:        "slow.png",
		ContentType: "image/png",
		Size:        9,
		Content:     &slowReader{data: strings.NewReader("png-bytes"), delay: 50 * time.Millisecond},
	}
	f.engine.AttachFilesAsync(context.Background(), []attachments.Upload{up}, nil)

	// the batch is registered before AttachFilesAsync returns, so the
	// late-arriving file must be on the submitted complaint
	id, errs := f.engine.Submit(context.Background())
	require.Empty(t, errs)

	c, ok := f.store.FindByID(id)
	require.True(t, ok)
	require.Len(t, c.Attachments, 1)
	assert.Equal(t, "slow.png", c.Attachments[0].Name)
}

func TestAttachFilesAsyncNeverBlocksNavigation(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(validForm())

	var wg sync.WaitGroup
	wg.Add(1)
	up := attachments.Upload{
		Name:        "slow.png",
		ContentType: "image/png",
		Size:        9,
		Content:     &slowReader{data: strings.NewReader("png-bytes"), delay: 50 * time.Millisecond},
	}
	f.engine.AttachFilesAsync(context.Background(), []attachments.Upload{up}, func(accepted []models.Attachment, rejected []*models.IngestionError) {
		defer wg.Done()
		assert.Len(t, accepted, 1)
		assert.Empty(t, rejected)
	})

	// stepping through the flow proceeds while the read is pending
	assert.Empty(t, f.engine.Advance())
	assert.Equal(t, 2, f.engine.Step())
	f.engine.Retreat()
	assert.Equal(t, 1, f.engine.Step())

	wg.Wait()
	assert.Len(t, f.engine.Staged(), 1)
}

func TestSubmitKeepsStagedAttachments(t *testing.T) {
	f := newFixture(t)
	f.engine.SetForm(validForm())
	f.engine.AttachFiles(context.Background(), []attachments.Upload{pngUpload("evidence.png", 9)})

	id, errs := f.engine.Submit(context.Background())
	require.Empty(t, errs)

	c, ok := f.store.FindByID(id)
	require.True(t, ok)
	require.Len(t, c.Attachments, 1)
	assert.Equal(t, "evidence.png", c.Attachments[0].Name)
}
