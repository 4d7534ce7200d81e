package progress

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/squadfit/internal/session"
	"github.com/2beens/squadfit/internal/telemetry/tracing"
	"github.com/2beens/squadfit/internal/training"
	"github.com/2beens/squadfit/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress

const (
	DefaultDays = 7
	maxDays     = 366
)

type eventsService interface {
	Range(ctx context.Context, memberID int, from, to time.Time) ([]*training.Event, error)
}

type Handler struct {
	events      eventsService
	defaultGoal int
	// used to pick the current day, can be swapped in tests
	nowFunc func() time.Time
}

func NewHandler(events eventsService, defaultGoal int) *Handler {
	return &Handler{
		events:      events,
		defaultGoal: defaultGoal,
		nowFunc:     time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress/energy", h.HandleEnergy).Methods("GET", "OPTIONS").Name("progress-energy")
}

func (h *Handler) HandleEnergy(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.energy")
	defer span.End()

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	days, err := pkg.IntFromQuery(query.Get("days"), DefaultDays)
	if err != nil || days < 1 || days > maxDays {
		http.Error(w, "error, invalid days", http.StatusBadRequest)
		return
	}
	goal, err := pkg.IntFromQuery(query.Get("goal"), h.defaultGoal)
	if err != nil || goal < 1 {
		http.Error(w, "error, invalid goal", http.StatusBadRequest)
		return
	}

	span.SetAttributes(
		attribute.Int("member.id", sess.UserID),
		attribute.Int("days", days),
		attribute.Int("goal", goal),
	)

	now := h.nowFunc()
	from := startOfDay(now, now.Location()).AddDate(0, 0, -(days - 1))

	events, err := h.events.Range(ctx, sess.UserID, from, now)
	if err != nil {
		log.Errorf("energy progress of member [%d]: %s", sess.UserID, err)
		http.Error(w, "get progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, Summarize(events, goal, from, days), http.StatusOK)
}

