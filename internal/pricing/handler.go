package pricing

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/squadfit/internal/session"
	"github.com/2beens/squadfit/internal/telemetry/metrics"
	"github.com/2beens/squadfit/internal/telemetry/tracing"
	"github.com/2beens/squadfit/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=pricing

type pricingService interface {
	GetTrainerPricing(ctx context.Context, trainerID int) (*TrainerPricing, error)
	SaveTrainerPricing(ctx context.Context, tp *TrainerPricing) error
	DeleteTrainerPricing(ctx context.Context, trainerID int) error
	TrainerQuotes(ctx context.Context, trainerID int, opts QuoteOptions) ([]Quote, error)
	PayAsYouGoPrice(ctx context.Context, trainerID int, opts QuoteOptions) (*PayAsYouGoQuote, error)
	Quote(ctx context.Context, pc PricingContext, plan PlanConfiguration) (*Quote, error)
}

type QuotesResponse struct {
	TrainerID int     `json:"trainerId"`
	Quotes    []Quote `json:"quotes"`
}

type AdHocQuoteRequest struct {
	Context PricingContext    `json:"context"`
	Plan    PlanConfiguration `json:"plan"`
}

type Handler struct {
	service pricingService
	metrics *metrics.Manager
}

func NewHandler(service pricingService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/pricing/quote", handler.HandleAdHocQuote).Methods("POST", "OPTIONS").Name("pricing-quote")
	router.HandleFunc("/pricing/trainers/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("pricing-get")
	router.HandleFunc("/pricing/trainers/{id}", handler.HandleSave).Methods("PUT", "OPTIONS").Name("pricing-save")
	router.HandleFunc("/pricing/trainers/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("pricing-delete")
	router.HandleFunc("/pricing/trainers/{id}/quotes", handler.HandleTrainerQuotes).Methods("GET", "OPTIONS").Name("pricing-trainer-quotes")
	router.HandleFunc("/pricing/trainers/{id}/payg", handler.HandlePayAsYouGo).Methods("GET", "OPTIONS").Name("pricing-trainer-payg")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pricing.get")
	defer span.End()

	trainerID, ok := trainerIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	tp, err := handler.service.GetTrainerPricing(ctx, trainerID)
	if err != nil {
		handler.writeError(w, "get trainer pricing", err)
		return
	}

	pkg.WriteJSON(w, tp, http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pricing.save")
	defer span.End()

	trainerID, ok := trainerIDFromPath(w, r)
	if !ok {
		return
	}
	if !ownsTrainerID(w, r, trainerID) {
		return
	}

	if !pkg.IsJSONContentType(r.Header.Get("Content-Type")) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var tp TrainerPricing
	if err := pkg.DecodeJSONPayload(r.Body, &tp); err != nil {
		log.Tracef("save trainer pricing [%d]: %s", trainerID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// path wins over whatever the body says
	tp.TrainerID = trainerID

	if err := handler.service.SaveTrainerPricing(ctx, &tp); err != nil {
		handler.writeError(w, "save trainer pricing", err)
		return
	}

	log.Debugf("trainer [%d] pricing saved with %d plans", trainerID, len(tp.Plans))
	pkg.WriteJSON(w, tp, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pricing.delete")
	defer span.End()

	trainerID, ok := trainerIDFromPath(w, r)
	if !ok {
		return
	}
	if !ownsTrainerID(w, r, trainerID) {
		return
	}

	if err := handler.service.DeleteTrainerPricing(ctx, trainerID); err != nil {
		handler.writeError(w, "delete trainer pricing", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted:"+strconv.Itoa(trainerID))
}

func (handler *Handler) HandleTrainerQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pricing.quotes")
	defer span.End()

	trainerID, ok := trainerIDFromPath(w, r)
	if !ok {
		return
	}
	opts, err := quoteOptionsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int("trainer.id", trainerID),
		attribute.String("training.type", opts.TrainingType.String()),
	)

	quotes, err := handler.service.TrainerQuotes(ctx, trainerID, opts)
	if err != nil {
		handler.writeError(w, "trainer quotes", err)
		return
	}

	handler.countQuotes(opts.TrainingType, len(quotes))
	pkg.WriteJSON(w, QuotesResponse{
		TrainerID: trainerID,
		Quotes:    quotes,
	}, http.StatusOK)
}

func (handler *Handler) HandlePayAsYouGo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pricing.payg")
	defer span.End()

	trainerID, ok := trainerIDFromPath(w, r)
	if !ok {
		return
	}
	opts, err := quoteOptionsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paygQuote, err := handler.service.PayAsYouGoPrice(ctx, trainerID, opts)
	if err != nil {
		handler.writeError(w, "pay as you go price", err)
		return
	}

	handler.countQuotes(opts.TrainingType, 1)
	pkg.WriteJSON(w, paygQuote, http.StatusOK)
}

func (handler *Handler) HandleAdHocQuote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pricing.adhoc")
	defer span.End()

	if !pkg.IsJSONContentType(r.Header.Get("Content-Type")) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AdHocQuoteRequest
	if err := pkg.DecodeJSONPayload(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := handler.service.Quote(ctx, req.Context, req.Plan)
	if err != nil {
		handler.writeError(w, "ad hoc quote", err)
		return
	}

	handler.countQuotes(req.Context.TrainingType, 1)
	pkg.WriteJSON(w, quote, http.StatusOK)
}

func (handler *Handler) countQuotes(trainingType TrainingType, count int) {
	if handler.metrics == nil {
		return
	}
	handler.metrics.CounterPricingQuotes.WithLabelValues(trainingType.String()).Add(float64(count))
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidConfiguration):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTrainerPricingNotFound), errors.Is(err, ErrTrainerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func trainerIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, trainer id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "error, trainer id invalid", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// ownsTrainerID allows changing pricing only to the trainer it belongs to
func ownsTrainerID(w http.ResponseWriter, r *http.Request, trainerID int) bool {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return false
	}
	if !sess.IsTrainer() || sess.UserID != trainerID {
		log.Warnf("user [%d] role [%s] tried to change pricing of trainer [%d]", sess.UserID, sess.Role, trainerID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func quoteOptionsFromQuery(r *http.Request) (QuoteOptions, error) {
	query := r.URL.Query()

	opts := QuoteOptions{
		TrainingType: TrainingTypePersonal,
	}
	if typeParam := query.Get("type"); typeParam != "" {
		tt, err := ParseTrainingType(typeParam)
		if err != nil {
			return QuoteOptions{}, err
		}
		opts.TrainingType = tt
	}

	if primeParam := query.Get("prime"); primeParam != "" {
		prime, err := strconv.ParseBool(primeParam)
		if err != nil {
			return QuoteOptions{}, errors.New("error, prime must be a boolean")
		}
		opts.PrimeTime = &prime
	}

	return opts, nil
}
