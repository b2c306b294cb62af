// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique, stable identifier.
	ID uint

	// Email is unique across all users and compared as stored.
	Email string

	// Password is the bcrypt hash. It never holds plaintext.
	Password string

	Name string
	Role Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
