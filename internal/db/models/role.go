package models

// Role is the authorization level of a user.
// Admins may change content; editors can sign in but are read-only.
type Role string

const (
	// RoleAdmin may call every write endpoint.
	RoleAdmin Role = "admin"
	// RoleEditor is authenticated but not allowed to mutate content.
	RoleEditor Role = "editor"
)

// IsAdmin reports whether r grants admin rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
