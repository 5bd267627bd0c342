package models

// Role represents user roles in the tracker
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleFieldAgent Role = "field_agent"
)

// Claims is the authenticated identity carried by a request
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleFieldAgent:
		return true
	default:
		return false
	}
}

// CanSeeAll reports whether the role may view records captured by other users.
func (r Role) CanSeeAll() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

// CanView reports whether the holder of these claims may see the given record.
func (c *Claims) CanView(rec LocatedRecord) bool {
	if c == nil {
		return false
	}
	if c.Role.CanSeeAll() {
		return true
	}
	return c.Role == RoleFieldAgent && c.UserID != "" && rec.UserID == c.UserID
}
