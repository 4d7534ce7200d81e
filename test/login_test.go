//go:build integration_test || all_tests

package test

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/squadfit/internal/auth"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.redisDataCleanup(ctx))

	cases := map[string]struct {
		credentials        auth.Credentials
		expectedStatusCode int
		expectedBody       string
	}{
		"bad password": {
			credentials:        auth.Credentials{Username: testUsername, Password: "bad-password"},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"bad username": {
			credentials:        auth.Credentials{Username: "bad-username", Password: testPassword},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"missing password": {
			credentials:        auth.Credentials{Username: testUsername},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "login failed",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			resp := s.doJSON(ctx, t, "POST", "/a/login", "", tc.credentials)
			defer resp.Body.Close()
			require.Equal(t, tc.expectedStatusCode, resp.StatusCode)

			respBytes, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBody, strings.TrimSpace(string(respBytes)))
		})
	}

	t.Run("login, then logout", func(t *testing.T) {
		token := s.doLogin(ctx, t, testUsername)

		resp := s.doRequest(ctx, t, "GET", "/a/logout", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		// the session is gone
		resp = s.doRequest(ctx, t, "GET", "/progress/energy", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	})

	t.Run("rate limiting", func(t *testing.T) {
		require.NoError(t, s.redisDataCleanup(ctx))

		// config allows 10 login attempts per minute
		for i := 1; i <= 15; i++ {
			resp := s.doJSON(ctx, t, "POST", "/a/login", "", auth.Credentials{
				Username: "test-user",
				Password: "test-pass",
			})

			if i <= 10 {
				require.Equal(t, http.StatusBadRequest, resp.StatusCode, "iteration: %d", i)
				assert.Empty(t, resp.Header.Get("Retry-After"), "iteration: %d", i)
			} else {
				require.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "iteration: %d", i)
				retryAfter, err := strconv.Atoi(resp.Header.Get("Retry-After"))
				require.NoError(t, err, "iteration: %d", i)
				assert.Positive(t, retryAfter, "iteration: %d", i)
			}

			assert.NoError(t, resp.Body.Close())
		}

		require.NoError(t, s.redisDataCleanup(ctx))
	})
}
