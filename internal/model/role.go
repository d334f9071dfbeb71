package model

import "fmt"

// Role is the administrative standing of an account. Edit rights only exist
// as part of RoleEditor, so an editor is always an admin.
type Role string

const (
	// RoleMember is a regular alumnus.
	RoleMember Role = "member"
	// RoleAdmin may view the admin console but not change anything.
	RoleAdmin Role = "admin"
	// RoleEditor is an admin with edit rights.
	RoleEditor Role = "editor"
)

// ParseRole converts a stored value into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleMember, RoleAdmin, RoleEditor:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// RoleFromFlags builds a Role from the isAdmin/canEdit pair carried in token
// claims. canEdit without isAdmin collapses to RoleMember.
func RoleFromFlags(isAdmin, canEdit bool) Role {
	switch {
	case isAdmin && canEdit:
		return RoleEditor
	case isAdmin:
		return RoleAdmin
	default:
		return RoleMember
	}
}

// IsAdmin reports whether the role grants admin console access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CanEdit reports whether the role grants mutating admin operations.
func (r Role) CanEdit() bool {
	return r == RoleEditor
}
