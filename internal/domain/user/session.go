package user

import (
	"context"
	"fmt"
)

// Session is the authenticated actor of a request.
type Session struct {
	UserID string
	Name   string
	Role   Role
}

type sessionContextKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext returns the session stored by WithSession.
func SessionFromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	if !ok || s.UserID == "" {
		return Session{}, ErrNoSession
	}
	if !s.Role.IsValid() {
		return Session{}, ErrInvalidRole
	}
	return s, nil
}

// Authorize returns the session when its role holds perm.
func Authorize(ctx context.Context, perm Permission) (Session, error) {
	s, err := SessionFromContext(ctx)
	if err != nil {
		return Session{}, err
	}
	if !HasPermission(s.Role, perm) {
		return Session{}, fmt.Errorf("%w: %s requires %s", ErrInsufficientPermissions, s.Role, perm)
	}
	return s, nil
}
