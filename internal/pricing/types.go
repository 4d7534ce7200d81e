package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidConfiguration is returned when a pricing context or a plan
// cannot produce a meaningful price (non-positive amounts, discount outside [0, 100], ...).
var ErrInvalidConfiguration = errors.New("invalid pricing configuration")

// MaxBasePricePerHour bounds the hourly rate a context or a trainer may carry.
const MaxBasePricePerHour = 1e9

type TrainingType string

const (
	TrainingTypePersonal TrainingType = "personal"
	TrainingTypeGroup    TrainingType = "group"
)

func (tt TrainingType) String() string {
	return string(tt)
}

func (tt TrainingType) IsValid() bool {
	switch tt {
	case TrainingTypePersonal, TrainingTypeGroup:
		return true
	default:
		return false
	}
}

func ParseTrainingType(s string) (TrainingType, error) {
	tt := TrainingType(strings.ToLower(strings.TrimSpace(s)))
	if !tt.IsValid() {
		return "", fmt.Errorf("%w: unknown training type [%s]", ErrInvalidConfiguration, s)
	}
	return tt, nil
}

// PricingContext holds everything about a session price that does not depend on the plan.
type PricingContext struct {
	TrainingType     TrainingType `json:"trainingType"`
	BasePricePerHour float64      `json:"basePricePerHour"`
	IsPrimeTime      bool         `json:"isPrimeTime"`
	IsPayAsYouGo     bool         `json:"isPayAsYouGo"`
}

func (pc PricingContext) Validate() error {
	if !pc.TrainingType.IsValid() {
		return fmt.Errorf("%w: unknown training type [%s]", ErrInvalidConfiguration, pc.TrainingType)
	}
	return validateBasePrice(pc.BasePricePerHour)
}

// PlanConfiguration is a billing tier, e.g. "6 Months", bundling a session count and a discount.
type PlanConfiguration struct {
	Name             string  `json:"name" validate:"required"`
	DurationMonths   int     `json:"durationMonths"`
	SessionsPerMonth int     `json:"sessionsPerMonth"`
	DiscountPercent  float64 `json:"discountPercent"`
	// Recommended is display only
	Recommended bool `json:"recommended"`
}

func (p PlanConfiguration) Validate() error {
	if p.DurationMonths <= 0 {
		return fmt.Errorf("%w: plan [%s] duration months must be positive, got %d", ErrInvalidConfiguration, p.Name, p.DurationMonths)
	}
	if p.SessionsPerMonth <= 0 {
		return fmt.Errorf("%w: plan [%s] sessions per month must be positive, got %d", ErrInvalidConfiguration, p.Name, p.SessionsPerMonth)
	}
	if !isFinite(p.DiscountPercent) || p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return fmt.Errorf("%w: plan [%s] discount percent must be in [0, 100], got %v", ErrInvalidConfiguration, p.Name, p.DiscountPercent)
	}
	return nil
}

// TrainerPricing is the persisted pricing setup of a single trainer.
type TrainerPricing struct {
	TrainerID        int                 `json:"trainerId"`
	BasePricePerHour float64             `json:"basePricePerHour"`
	PrimeTime        bool                `json:"primeTime"`
	Plans            []PlanConfiguration `json:"plans" validate:"required,min=1,dive"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// Context returns the pricing context of this trainer for the given training type.
func (tp *TrainerPricing) Context(trainingType TrainingType) PricingContext {
	return PricingContext{
		TrainingType:     trainingType,
		BasePricePerHour: tp.BasePricePerHour,
		IsPrimeTime:      tp.PrimeTime,
	}
}

func (tp *TrainerPricing) Validate() error {
	if err := validateBasePrice(tp.BasePricePerHour); err != nil {
		return err
	}
	if len(tp.Plans) == 0 {
		return fmt.Errorf("%w: at least one plan is required", ErrInvalidConfiguration)
	}
	names := make(map[string]bool, len(tp.Plans))
	for _, p := range tp.Plans {
		if err := p.Validate(); err != nil {
			return err
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate plan name [%s]", ErrInvalidConfiguration, p.Name)
		}
		names[p.Name] = true
	}
	return nil
}

func validateBasePrice(base float64) error {
	if !isFinite(base) || base <= 0 {
		return fmt.Errorf("%w: base price per hour must be positive, got %v", ErrInvalidConfiguration, base)
	}
	if base > MaxBasePricePerHour {
		return fmt.Errorf("%w: base price per hour must not exceed %v, got %v", ErrInvalidConfiguration, MaxBasePricePerHour, base)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
