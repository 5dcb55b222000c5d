package models

import "time"

// Role represents the available roles in the portal.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleFaculty   Role = "faculty"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleRecruiter, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User represents a portal account. Users are never deleted; admins may
// deactivate them or change their role.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role   *Role
	Active *bool
	Search string
}
