//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/2beens/squadfit/internal/auth"
	"github.com/2beens/squadfit/internal/misc"
)

func (s *IntegrationTestSuite) doLogin(ctx context.Context, t *testing.T, username string) string {
	t.Helper()

	loginReqJson, err := json.Marshal(auth.Credentials{
		Username: username,
		Password: testPassword,
	})
	require.NoError(t, err)

	resp := s.doRequest(ctx, t, "POST", "/a/login", "", bytes.NewBuffer(loginReqJson))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var loginResp misc.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

func (s *IntegrationTestSuite) doRequest(ctx context.Context, t *testing.T, method, path, token string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, t *testing.T, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(payloadJson)
	}
	return s.doRequest(ctx, t, method, path, token, body)
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// redisDataCleanup drops the rate limiter state between tests.
func (s *IntegrationTestSuite) redisDataCleanup(ctx context.Context) error {
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("localhost:%s", s.redisPort),
	})
	defer rdb.Close()

	keys, err := rdb.Keys(ctx, "rate:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
