package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/squadfit/internal/session"
	"github.com/2beens/squadfit/internal/telemetry/tracing"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type SessionStore struct {
	ttl         time.Duration
	redisClient *redis.Client
	// used to check the session age, can be swapped in tests
	nowFunc func() time.Time
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (_ *session.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := getSession(ctx, s.redisClient, token)
	if err != nil {
		return nil, err
	}

	if sess.Expired(s.nowFunc(), s.ttl) {
		return nil, ErrSessionExpired
	}

	return sess, nil
}

func getSession(ctx context.Context, rdb *redis.Client, token string) (*session.Session, error) {
	raw, err := rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	sess := &session.Session{}
	if err := json.Unmarshal(raw, sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	sess.Token = token

	return sess, nil
}
