package jwtmw

import (
	"context"

	"github.com/gin-gonic/gin"

	"bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/shared/apperr"
)

// ContextIdentity is the gin context key holding the authenticated Identity.
const ContextIdentity = "identity"

// Identity is the authenticated caller of a single request.
type Identity struct {
	UserID uint
	Email  string
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

// ErrNoIdentity is returned when a handler runs without AuthRequired.
var ErrNoIdentity = apperr.New(apperr.ErrUnauthenticated, "no token provided")

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// CurrentIdentity returns the identity attached by AuthRequired.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// RequireIdentity is CurrentIdentity for handlers: a missing identity is
// reported as ErrNoIdentity.
func RequireIdentity(c *gin.Context) (Identity, error) {
	id, ok := CurrentIdentity(c)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
