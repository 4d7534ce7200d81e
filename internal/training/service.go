package training

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/squadfit/internal/telemetry/metrics"
	"github.com/2beens/squadfit/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Range(ctx context.Context, memberID int, from, to time.Time) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type Service struct {
	repo           eventsRepo
	metricsManager *metrics.Manager
}

func NewService(repo eventsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (s *Service) add(ctx context.Context, event Event) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.add."+event.Type.String())
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := s.repo.Add(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("add %s event: %w", event.Type, err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterTrainingEvents.WithLabelValues(event.Type.String()).Inc()
	}
	return added.ID, nil
}

func (s *Service) AddTrainingStart(ctx context.Context, memberID int, ts TrainingStart) (int, error) {
	return s.add(ctx, NewTrainingStartEvent(memberID, ts))
}

func (s *Service) AddTrainingFinish(ctx context.Context, memberID int, tf TrainingFinish) (int, error) {
	return s.add(ctx, NewTrainingFinishEvent(memberID, tf))
}

func (s *Service) AddWeightReport(ctx context.Context, memberID int, wr WeightReport) (int, error) {
	return s.add(ctx, NewWeightReportEvent(memberID, wr))
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Range returns the member's events between from and to, oldest first.
func (s *Service) Range(ctx context.Context, memberID int, from, to time.Time) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.Range(ctx, memberID, from, to)
	if err != nil {
		return nil, fmt.Errorf("range events: %w", err)
	}
	return events, nil
}

func (s *Service) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.repo.Count(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
