// Package identity carries the authenticated caller through every core
// call. There is no ambient session state; handlers build an Identity
// from token claims and pass it down explicitly.
package identity

import (
	"context"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
)

// Identity is the authenticated caller of an operation. The zero value
// is an anonymous (unauthenticated) caller.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

// Anonymous reports whether the identity belongs to no logged-in user.
func (id Identity) Anonymous() bool {
	return id.UserID == 0
}

// IsAdmin reports whether the identity carries the admin role claim.
func (id Identity) IsAdmin() bool {
	return id.Role == "admin"
}

// RequireAuthenticated passes through for a logged-in identity.
func RequireAuthenticated(id Identity) error {
	if id.Anonymous() {
		return apperrors.ErrAuthenticationRequired
	}
	return nil
}

// RequireAdmin gates admin-only operations: movie create/edit/delete,
// seat reset, the sales panel and CSV export.
func RequireAdmin(id Identity) error {
	if err := RequireAuthenticated(id); err != nil {
		return err
	}
	if !id.IsAdmin() {
		return apperrors.ErrAuthorizationDenied
	}
	return nil
}

type ctxKey struct{}

// NewContext returns a context carrying the identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the identity set by the auth middleware. The
// second return is false for requests that never passed authentication.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
