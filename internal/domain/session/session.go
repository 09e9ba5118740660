package session

import "context"

// Session is the read-only identity and role context each view receives at
// construction. It is built from verified JWT claims by the HTTP layer; the
// views never mutate it.
type Session struct {
	UserID     string
	Name       string
	IsAdmin    bool
	IsManager  bool
	Department string // empty when the user has no department assignment
}

// Gateway is the remote side of the session: the sign-out action the admin
// dashboard invokes before redirecting.
type Gateway interface {
	SignOut(ctx context.Context) error
}

type contextKey struct{}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session placed by the auth middleware.
func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok {
		return Session{}, ErrSessionMissing
	}
	return s, nil
}
