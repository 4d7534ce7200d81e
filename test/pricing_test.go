//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/squadfit/internal/auth"
	"github.com/2beens/squadfit/internal/pricing"
)

func (s *IntegrationTestSuite) TestTrainerPricing() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.redisDataCleanup(ctx))

	trainer, err := auth.NewAccountsRepo(s.dbPool).GetByUsername(ctx, testUsername)
	require.NoError(t, err)
	trainerPath := fmt.Sprintf("/pricing/trainers/%d", trainer.ID)

	trainerToken := s.doLogin(ctx, t, testUsername)
	memberToken := s.doLogin(ctx, t, testMemberName)

	resp := s.doRequest(ctx, t, "GET", trainerPath, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	tp := pricing.TrainerPricing{
		BasePricePerHour: 50,
		Plans:            pricing.DefaultPlans(),
	}

	t.Run("only the trainer can save", func(t *testing.T) {
		resp := s.doJSON(ctx, t, "PUT", trainerPath, "", tp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		resp = s.doJSON(ctx, t, "PUT", trainerPath, memberToken, tp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		invalid := tp
		invalid.BasePricePerHour = -1
		resp = s.doJSON(ctx, t, "PUT", trainerPath, trainerToken, invalid)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		resp = s.doJSON(ctx, t, "PUT", trainerPath, trainerToken, tp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	})

	t.Run("public reads", func(t *testing.T) {
		var stored pricing.TrainerPricing
		resp := s.doRequest(ctx, t, "GET", trainerPath, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &stored)
		assert.Equal(t, trainer.ID, stored.TrainerID)
		assert.Equal(t, 50.0, stored.BasePricePerHour)

		var quotes pricing.QuotesResponse
		resp = s.doRequest(ctx, t, "GET", trainerPath+"/quotes?type=group", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &quotes)
		require.Len(t, quotes.Quotes, 4)
		// 50 * 0.6 * 8 sessions * 12 months, 15% off
		assert.InDelta(t, 2448.0, quotes.Quotes[3].Total, 0.0001)

		var payg pricing.PayAsYouGoQuote
		resp = s.doRequest(ctx, t, "GET", trainerPath+"/payg", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &payg)
		assert.Equal(t, 60.0, payg.SessionPrice)
	})

	t.Run("ad hoc quote", func(t *testing.T) {
		var quote pricing.Quote
		resp := s.doJSON(ctx, t, "POST", "/pricing/quote", "", pricing.AdHocQuoteRequest{
			Context: pricing.PricingContext{TrainingType: pricing.TrainingTypePersonal, BasePricePerHour: 100, IsPrimeTime: true},
			Plan:    pricing.PlanConfiguration{Name: "3 Months", DurationMonths: 3, SessionsPerMonth: 8, DiscountPercent: 10},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &quote)
		assert.InDelta(t, 2592.0, quote.Total, 0.0001)
		assert.NotEmpty(t, quote.ID)
	})

	t.Run("delete", func(t *testing.T) {
		resp := s.doRequest(ctx, t, "DELETE", trainerPath, trainerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, resp.Body.Close())

		resp = s.doRequest(ctx, t, "GET", trainerPath+"/quotes", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	})
}
