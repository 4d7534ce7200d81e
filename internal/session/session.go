// Package session carries the authenticated user of a request.
//
// A Session is resolved once per request by the auth middleware and travels
// down in the request context; there is no process wide "current user".
package session

import (
	"context"
	"time"
)

type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
)

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleTrainer
}

type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) IsTrainer() bool {
	return s != nil && s.Role == RoleTrainer
}

// Expired reports whether the session is older than ttl at the given time.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
