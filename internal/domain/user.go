package domain

import "time"

// User represents an account in the union's directory.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Roles recognised by the system. Membership is flat: an editor does not
// inherit admin rights.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []string{RoleAdmin, RoleEditor}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// UserUpdate holds the mutable profile fields. Password and role changes never
// travel through this type: passwords go through the dedicated
// change-password flow and roles are provisioned out-of-band.
type UserUpdate struct {
	Name  *string
	Email *string
}
