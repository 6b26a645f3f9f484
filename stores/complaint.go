package stores

import (
	"sync"

	"github.com/securevoice/securevoice-core/models"
)

// ComplaintStore contains the methods to use with the in-memory complaint
// collection. The collection keeps insertion order.
type ComplaintStore interface {
	Insert(c models.Complaint)
	FindByID(id string) (models.Complaint, bool)
	Update(c models.Complaint) bool
	Delete(id string) bool
	All() []models.Complaint
	Len() int
}

type complaintStore struct {
	mu         sync.Mutex
	complaints []models.Complaint
}

// NewComplaintStore initializes a new instance of the complaint store
func NewComplaintStore() ComplaintStore {
	return &complaintStore{}
}

func (s *complaintStore) Insert(c models.Complaint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaints = append(s.complaints, c)
}

func (s *complaintStore) FindByID(id string) (models.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.complaints {
		if c.ID == id {
			return c, true
		}
	}
	return models.Complaint{}, false
}

// Update replaces the stored complaint with the same ID, keeping its position
func (s *complaintStore) Update(c models.Complaint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.complaints {
		if s.complaints[i].ID == c.ID {
			s.complaints[i] = c
			return true
		}
	}
	return false
}

func (s *complaintStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a snapshot copy in insertion order
func (s *complaintStore) All() []models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Complaint, len(s.complaints))
	copy(out, s.complaints)
	return out
}

func (s *complaintStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.complaints)
}
