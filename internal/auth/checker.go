package auth

import (
	"context"

	"github.com/2beens/squadfit/internal/session"
)

var _ Resolver = (*SessionStore)(nil)

// Resolver turns a request token into the session of the logged user.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}
