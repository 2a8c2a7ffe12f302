// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege level of an account.
type Role string

const (
	// RoleUser indicates an ordinary end user of the job board.
	RoleUser Role = "user"
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates an administrator with full control.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// CanAccessBackOffice reports whether the role may pass the admin role gate.
// The back office is categorically closed to RoleUser, regardless of any
// other account state.
func (r Role) CanAccessBackOffice() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
