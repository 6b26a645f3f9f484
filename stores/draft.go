package stores

import (
	"sync"

	"github.com/securevoice/securevoice-core/models"
)

// DraftSlot holds at most one unsubmitted wizard draft. Every save overwrites
// the previous draft; last save wins.
type DraftSlot interface {
	Save(d models.Draft)
	Load() (models.Draft, bool)
	Clear()
	HasDraft() bool
}

type draftSlot struct {
	mu    sync.Mutex
	draft models.Draft
	held  bool
}

// NewDraftSlot initializes a new single-entry draft slot
func NewDraftSlot() DraftSlot {
	return &draftSlot{}
}

func (s *draftSlot) Save(d models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
	s.held = true
}

func (s *draftSlot) Load() (models.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.held
}

func (s *draftSlot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.Draft{}
	s.held = false
}

func (s *draftSlot) HasDraft() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}
