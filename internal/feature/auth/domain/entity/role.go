package entity

import (
	"errors"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ErrInvalidRole is returned by ParseRole for values outside the closed set.
var ErrInvalidRole = errors.New("role must be USER or ADMIN")

// ParseRole normalizes s (case-insensitive, surrounding spaces ignored).
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether r is USER or ADMIN.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string { return string(r) }
