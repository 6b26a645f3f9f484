package stores

import (
	"sync"

	"github.com/securevoice/securevoice-core/models"
)

// UserStore contains the methods to use with the static credential table
type UserStore interface {
	Insert(u models.User)
	FindByUsername(username string) (models.User, bool)
	All() []models.User
}

type userStore struct {
	mu    sync.Mutex
	users []models.User
}

// NewUserStore initializes a new instance of the user store
func NewUserStore() UserStore {
	return &userStore{}
}

func (s *userStore) Insert(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

func (s *userStore) FindByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *userStore) All() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
