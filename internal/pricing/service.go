package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/squadfit/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=pricing

const (
	megabyte               = 1024 * 1024
	DefaultCacheSize       = 10 * megabyte
	DefaultCacheExpiration = 10 * time.Minute
)

type pricingRepo interface {
	GetTrainerPricing(ctx context.Context, trainerID int) (*TrainerPricing, error)
	UpsertTrainerPricing(ctx context.Context, tp *TrainerPricing) error
	DeleteTrainerPricing(ctx context.Context, trainerID int) error
}

// QuoteOptions select the pricing context for a trainer's quotes.
// A nil PrimeTime keeps the trainer's configured prime time flag.
type QuoteOptions struct {
	TrainingType TrainingType
	PrimeTime    *bool
}

type PayAsYouGoQuote struct {
	TrainerID    int          `json:"trainerId"`
	TrainingType TrainingType `json:"trainingType"`
	PrimeTime    bool         `json:"primeTime"`
	// SessionPrice is the flat pay-as-you-go price: base price plus the surcharge
	SessionPrice float64 `json:"sessionPrice"`
	// UnitPrice additionally applies the training type and prime time rules
	UnitPrice float64 `json:"unitPrice"`
	Display   string  `json:"display"`
}

type Service struct {
	repo            pricingRepo
	calculator      *Calculator
	cache           *freecache.Cache
	cacheExpiration time.Duration
}

func NewService(repo pricingRepo, calculator *Calculator, cacheSize int, cacheExpiration time.Duration) *Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheExpiration <= 0 {
		cacheExpiration = DefaultCacheExpiration
	}
	return &Service{
		repo:            repo,
		calculator:      calculator,
		cache:           freecache.NewCache(cacheSize),
		cacheExpiration: cacheExpiration,
	}
}

func trainerCacheKey(trainerID int) []byte {
	return []byte(fmt.Sprintf("trainer-pricing::%d", trainerID))
}

func (s *Service) GetTrainerPricing(ctx context.Context, trainerID int) (_ *TrainerPricing, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.pricing.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := trainerCacheKey(trainerID)
	if cached, cacheErr := s.cache.Get(cacheKey); cacheErr == nil {
		tp := &TrainerPricing{}
		unmarshalErr := json.Unmarshal(cached, tp)
		if unmarshalErr == nil {
			log.Tracef("trainer pricing [%d] found in cache", trainerID)
			return tp, nil
		}
		log.Warnf("unmarshal cached trainer pricing [%d]: %s", trainerID, unmarshalErr)
		s.cache.Del(cacheKey)
	}

	tp, err := s.repo.GetTrainerPricing(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	if tpJson, err := json.Marshal(tp); err != nil {
		log.Errorf("marshal trainer pricing [%d] for cache: %s", trainerID, err)
	} else if err := s.cache.Set(cacheKey, tpJson, int(s.cacheExpiration.Seconds())); err != nil {
		log.Errorf("cache trainer pricing [%d]: %s", trainerID, err)
	}

	return tp, nil
}

// SaveTrainerPricing validates and stores the trainer's pricing.
func (s *Service) SaveTrainerPricing(ctx context.Context, tp *TrainerPricing) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.pricing.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := tp.Validate(); err != nil {
		return err
	}

	tp.UpdatedAt = time.Now()
	if err := s.repo.UpsertTrainerPricing(ctx, tp); err != nil {
		return err
	}

	s.cache.Del(trainerCacheKey(tp.TrainerID))
	return nil
}

func (s *Service) DeleteTrainerPricing(ctx context.Context, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.pricing.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = s.repo.DeleteTrainerPricing(ctx, trainerID); err != nil {
		return err
	}
	s.cache.Del(trainerCacheKey(trainerID))
	return nil
}

func (s *Service) TrainerQuotes(ctx context.Context, trainerID int, opts QuoteOptions) ([]Quote, error) {
	tp, err := s.GetTrainerPricing(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	pc := tp.Context(opts.TrainingType)
	if opts.PrimeTime != nil {
		pc.IsPrimeTime = *opts.PrimeTime
	}

	return s.calculator.QuoteAll(pc, tp.Plans)
}

func (s *Service) PayAsYouGoPrice(ctx context.Context, trainerID int, opts QuoteOptions) (*PayAsYouGoQuote, error) {
	tp, err := s.GetTrainerPricing(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	pc := tp.Context(opts.TrainingType)
	if opts.PrimeTime != nil {
		pc.IsPrimeTime = *opts.PrimeTime
	}
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	unitPrice := UnitPrice(pc, true)
	return &PayAsYouGoQuote{
		TrainerID:    trainerID,
		TrainingType: pc.TrainingType,
		PrimeTime:    pc.IsPrimeTime,
		SessionPrice: PayAsYouGoSessionPrice(pc.BasePricePerHour),
		UnitPrice:    unitPrice,
		Display:      FormatAmount(unitPrice, s.calculator.currencySymbol),
	}, nil
}

// Quote prices an ad-hoc context and plan, nothing is stored.
func (s *Service) Quote(_ context.Context, pc PricingContext, plan PlanConfiguration) (*Quote, error) {
	return s.calculator.Quote(pc, plan)
}
