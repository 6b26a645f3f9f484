package models

// Capability is a named permission granted by a role
type Capability string

// Capabilities checked by the permission gate
const (
	CapabilityView          Capability = "view"
	CapabilityEdit          Capability = "edit"
	CapabilityDelete        Capability = "delete"
	CapabilityExport        Capability = "export"
	CapabilityManageUsers   Capability = "manage_users"
	CapabilityViewAnalytics Capability = "view_analytics"
)

// Role is a fixed staff role tag
type Role string

// Staff roles
const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleViewer    Role = "viewer"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapabilityView:          true,
		CapabilityEdit:          true,
		CapabilityDelete:        true,
		CapabilityExport:        true,
		CapabilityManageUsers:   true,
		CapabilityViewAnalytics: true,
	},
	RoleModerator: {
		CapabilityView:          true,
		CapabilityEdit:          true,
		CapabilityExport:        true,
		CapabilityViewAnalytics: true,
	},
	RoleViewer: {
		CapabilityView: true,
	},
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Has reports whether the role grants the capability
func (r Role) Has(c Capability) bool {
	return roleCapabilities[r][c]
}

// Label returns the display name for the role
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleModerator:
		return "Moderator"
	case RoleViewer:
		return "Viewer"
	}
	return string(r)
}

// User is an entry in the static in-memory credential table
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
}
