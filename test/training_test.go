//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/squadfit/internal/progress"
	"github.com/2beens/squadfit/internal/training"
)

func (s *IntegrationTestSuite) TestTrainingEventsAndProgress() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.redisDataCleanup(ctx))

	token := s.doLogin(ctx, t, testMemberName)
	startedAt := time.Now().Add(-time.Minute).Truncate(time.Second)

	t.Run("add events", func(t *testing.T) {
		var ts training.TrainingStart
		resp := s.doJSON(ctx, t, "POST", "/training/events/start", token, training.TrainingStart{Timestamp: startedAt})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeBody(t, resp, &ts)
		assert.Positive(t, ts.ID)

		resp = s.doJSON(ctx, t, "POST", "/training/events/finish", token, training.TrainingFinish{
			Timestamp: startedAt.Add(30 * time.Second),
			Calories:  650,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		resp = s.doJSON(ctx, t, "POST", "/training/events/weight", token, training.WeightReport{
			Timestamp: startedAt,
			Weight:    78.4,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		// out of range weight
		resp = s.doJSON(ctx, t, "POST", "/training/events/weight", token, training.WeightReport{
			Timestamp: startedAt,
			Weight:    -3,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	})

	t.Run("list events", func(t *testing.T) {
		var list training.ListResponse
		resp := s.doRequest(ctx, t, "GET", "/training/events/list/page/1/size/10", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &list)
		assert.Equal(t, 3, list.Total)
		require.Len(t, list.Events, 3)
		for _, e := range list.Events {
			assert.Equal(t, s.memberID, e.MemberID)
		}

		resp = s.doRequest(ctx, t, "GET", "/training/events/list/page/1/size/10?type=training_finished", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &list)
		assert.Equal(t, 1, list.Total)
	})

	t.Run("energy progress", func(t *testing.T) {
		var summary progress.Summary
		resp := s.doRequest(ctx, t, "GET", "/progress/energy?days=2&goal=600", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &summary)

		assert.Equal(t, 600, summary.DailyGoal)
		assert.Len(t, summary.Days, 2)
		assert.Equal(t, 650, summary.TotalCalories)
		assert.Equal(t, 1, summary.TotalTrainings)
		require.NotNil(t, summary.LatestWeight)
		assert.Equal(t, 78.4, *summary.LatestWeight)
	})

	t.Run("anonymous", func(t *testing.T) {
		resp := s.doRequest(ctx, t, "GET", "/progress/energy", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	})
}
