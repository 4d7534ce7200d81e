package training

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/squadfit/internal/session"
	"github.com/2beens/squadfit/internal/telemetry/tracing"
	"github.com/2beens/squadfit/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

const maxPageSize = 200

type service interface {
	AddTrainingStart(ctx context.Context, memberID int, ts TrainingStart) (int, error)
	AddTrainingFinish(ctx context.Context, memberID int, tf TrainingFinish) (int, error)
	AddWeightReport(ctx context.Context, memberID int, wr WeightReport) (int, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type ListResponse struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/training/events/start", h.HandleTrainingStart).Methods("POST", "OPTIONS").Name("training-start")
	r.HandleFunc("/training/events/finish", h.HandleTrainingFinished).Methods("POST", "OPTIONS").Name("training-finish")
	r.HandleFunc("/training/events/weight", h.HandleWeightReport).Methods("POST", "OPTIONS").Name("training-weight")
	r.HandleFunc("/training/events/list/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("training-list")
}

func (h *Handler) HandleTrainingStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.new.start")
	defer span.End()

	sess, ok := memberSession(w, r)
	if !ok {
		return
	}

	var trainingStart TrainingStart
	if !decodeEvent(w, r, &trainingStart) {
		return
	}

	id, err := h.service.AddTrainingStart(ctx, sess.UserID, trainingStart)
	if err != nil {
		log.Errorf("new training start: %s", err)
		http.Error(w, "add training start failed", http.StatusInternalServerError)
		return
	}
	trainingStart.ID = id

	pkg.WriteJSON(w, trainingStart, http.StatusCreated)
}

func (h *Handler) HandleTrainingFinished(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.new.finish")
	defer span.End()

	sess, ok := memberSession(w, r)
	if !ok {
		return
	}

	var trainingFinish TrainingFinish
	if !decodeEvent(w, r, &trainingFinish) {
		return
	}

	id, err := h.service.AddTrainingFinish(ctx, sess.UserID, trainingFinish)
	if err != nil {
		log.Errorf("new training finish: %s", err)
		http.Error(w, "add training finish failed", http.StatusInternalServerError)
		return
	}
	trainingFinish.ID = id

	pkg.WriteJSON(w, trainingFinish, http.StatusCreated)
}

func (h *Handler) HandleWeightReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.new.weight")
	defer span.End()

	sess, ok := memberSession(w, r)
	if !ok {
		return
	}

	var weightReport WeightReport
	if !decodeEvent(w, r, &weightReport) {
		return
	}

	id, err := h.service.AddWeightReport(ctx, sess.UserID, weightReport)
	if err != nil {
		log.Errorf("new weight report: %s", err)
		http.Error(w, "add weight report failed", http.StatusInternalServerError)
		return
	}
	weightReport.ID = id

	pkg.WriteJSON(w, weightReport, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	sess, ok := memberSession(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 || size > maxPageSize {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}

	eventParams := EventParams{MemberID: sess.UserID}
	query := r.URL.Query()
	if typeParam := query.Get("type"); typeParam != "" {
		eventType := EventType(typeParam)
		if !eventType.IsValid() {
			http.Error(w, "error, invalid event type", http.StatusBadRequest)
			return
		}
		eventParams.Type = &eventType
	}
	for name, dst := range map[string]**time.Time{"from": &eventParams.From, "to": &eventParams.To} {
		if val := query.Get(name); val != "" {
			t, err := time.Parse(time.RFC3339, val)
			if err != nil {
				http.Error(w, "error, invalid "+name+" timestamp", http.StatusBadRequest)
				return
			}
			*dst = &t
		}
	}

	events, err := h.service.List(ctx, ListParams{
		EventParams: eventParams,
		// pages in the path start from 1
		Page: page - 1,
		Size: size,
	})
	if err != nil {
		log.Errorf("list training events: %s", err)
		http.Error(w, "list events failed", http.StatusInternalServerError)
		return
	}

	total, err := h.service.Count(ctx, eventParams)
	if err != nil {
		log.Errorf("count training events: %s", err)
		http.Error(w, "list events failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Events: events,
		Total:  total,
	}, http.StatusOK)
}

func memberSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}
	return sess, true
}

func decodeEvent(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !pkg.IsJSONContentType(r.Header.Get("Content-Type")) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := pkg.DecodeJSONPayload(r.Body, dst); err != nil {
		log.Tracef("decode training event: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
