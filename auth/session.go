// Package auth owns the single-actor session, the capability gate and the
// system-wide audit trail views.
package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/securevoice/securevoice-core/ids"
	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/stores"
)

// Errors returned by login and user creation
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidRole        = errors.New("unknown role")
)

// auditDisplayLimit caps how many records the audit view returns. The trail
// itself is unbounded.
const auditDisplayLimit = 50

// Session tracks the single authenticated actor for the process
type Session struct {
	users stores.UserStore
	trail stores.AuditTrail

	mu      sync.Mutex
	current *models.User
}

// NewSession creates a session over the given credential table and trail
func NewSession(users stores.UserStore, trail stores.AuditTrail) *Session {
	return &Session{users: users, trail: trail}
}

// Login authenticates against the static credential table. On success the
// returned user carries no password hash.
func (s *Session) Login(username, password string) (models.User, error) {
	u, ok := s.users.FindByUsername(strings.TrimSpace(username))
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	u.PasswordHash = ""
	s.mu.Lock()
	actor := u
	s.current = &actor
	s.mu.Unlock()

	s.Record(models.ActionLogin, "User "+u.Username+" logged in", "")
	zap.S().Infow("user logged in", "username", u.Username, "role", u.Role)
	return u, nil
}

// Logout clears the current actor. A logout with no actor is a no-op.
func (s *Session) Logout() {
	u, ok := s.Current()
	if !ok {
		return
	}

	// record while the actor is still attributed
	s.Record(models.ActionLogout, "User "+u.Username+" logged out", "")

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	zap.S().Infow("user logged out", "username", u.Username)
}

// Current returns a copy of the authenticated actor, if any
func (s *Session) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// HasCapability reports whether the current actor's role grants c. It is
// false whenever no actor is authenticated.
func (s *Session) HasCapability(c models.Capability) bool {
	u, ok := s.Current()
	return ok && u.Role.Has(c)
}

// Authorize is the gate every mutating operation calls before proceeding. The
// returned AccessError distinguishes a missing session, which should prompt
// re-authentication, from an insufficient role.
func (s *Session) Authorize(c models.Capability) error {
	u, ok := s.Current()
	if !ok {
		return &models.AccessError{Capability: c, Reason: models.ReasonNotAuthenticated}
	}
	if !u.Role.Has(c) {
		return &models.AccessError{Capability: c, Reason: models.ReasonForbidden}
	}
	return nil
}

// Record appends a system-wide audit record attributed to the current actor,
// or to "anonymous" when nobody is logged in
func (s *Session) Record(action, details, complaintID string) {
	rec := models.AuditRecord{
		ID:          ids.NewID(),
		Timestamp:   time.Now(),
		Action:      action,
		Details:     details,
		Username:    "anonymous",
		ComplaintID: complaintID,
	}
	if u, ok := s.Current(); ok {
		rec.Username = u.Username
		rec.UserID = u.ID
	}
	s.trail.Append(rec)
}

// CreateUser adds a user to the credential table. Gated by manage_users.
func (s *Session) CreateUser(username, password string, role models.Role, name string) (models.User, error) {
	if err := s.Authorize(models.CapabilityManageUsers); err != nil {
		return models.User{}, err
	}

	username = strings.TrimSpace(username)
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	if _, exists := s.users.FindByUsername(username); exists {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           ids.NewID(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	s.users.Insert(u)

	s.Record(models.ActionUserCreated, "New user created: "+username+" ("+string(role)+")", "")
	zap.S().Infow("user created", "username", username, "role", role)

	u.PasswordHash = ""
	return u, nil
}

// RecentAuditRecords returns the latest audit records, most recent first,
// capped for display. Gated by manage_users.
func (s *Session) RecentAuditRecords() ([]models.AuditRecord, error) {
	if err := s.Authorize(models.CapabilityManageUsers); err != nil {
		return nil, err
	}
	return s.trail.Recent(auditDisplayLimit), nil
}
