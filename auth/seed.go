package auth

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/securevoice/securevoice-core/ids"
	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/stores"
)

// SeedUsers loads the demo credential table. Passwords are hashed at startup
// so no plaintext secret is held past this call.
func SeedUsers(users stores.UserStore) {
	demo := []struct {
		username string
		password string
		role     models.Role
		name     string
	}{
		{"admin", "admin123", models.RoleAdmin, "Admin User"},
		{"moderator", "mod123", models.RoleModerator, "Moderator User"},
		{"viewer", "view123", models.RoleViewer, "Viewer User"},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			zap.S().Errorw("failed to hash seed password", "username", d.username, "error", err)
			continue
		}
		users.Insert(models.User{
			ID:           ids.NewID(),
			Username:     d.username,
			PasswordHash: string(hash),
			Role:         d.role,
			Name:         d.name,
		})
	}
}
