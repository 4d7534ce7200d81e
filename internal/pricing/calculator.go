package pricing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// GroupPriceMultiplier is applied to the base price for group trainings
	GroupPriceMultiplier = 0.6
	// PrimeTimeSurcharge is the multiplier for trainings in designated peak hours
	PrimeTimeSurcharge = 1.20
	// PayAsYouGoSurcharge is the multiplier for sessions billed without a monthly commitment
	PayAsYouGoSurcharge = 1.20
)

// ComputePrice derives the discounted price of sessionsInPeriod sessions.
// It is a pure function and never fails; out of range input gives out of range output,
// so callers validate first (see Calculator).
func ComputePrice(
	trainingType TrainingType,
	basePricePerHour float64,
	isPrimeTime bool,
	sessionsInPeriod int,
	discountPercent float64,
	isPayAsYouGo bool,
) float64 {
	unitPrice := unitPrice(trainingType, basePricePerHour, isPrimeTime, isPayAsYouGo)
	totalBeforeDiscount := unitPrice * float64(sessionsInPeriod)
	discountAmount := totalBeforeDiscount * (discountPercent / 100)
	return totalBeforeDiscount - discountAmount
}

// ComputePlanPrice is ComputePrice fed from a pricing context.
// Pay-as-you-go surcharge applies when requested either here or in the context, never twice.
func ComputePlanPrice(pc PricingContext, sessionsInPeriod int, discountPercent float64, payAsYouGo bool) float64 {
	return ComputePrice(
		pc.TrainingType,
		pc.BasePricePerHour,
		pc.IsPrimeTime,
		sessionsInPeriod,
		discountPercent,
		payAsYouGo || pc.IsPayAsYouGo,
	)
}

// UnitPrice is the price of a single session, before any plan discount.
func UnitPrice(pc PricingContext, payAsYouGo bool) float64 {
	return unitPrice(pc.TrainingType, pc.BasePricePerHour, pc.IsPrimeTime, payAsYouGo || pc.IsPayAsYouGo)
}

func unitPrice(trainingType TrainingType, basePricePerHour float64, isPrimeTime, isPayAsYouGo bool) float64 {
	price := basePricePerHour
	if trainingType != TrainingTypePersonal {
		price = basePricePerHour * GroupPriceMultiplier
	}
	if isPrimeTime {
		price *= PrimeTimeSurcharge
	}
	if isPayAsYouGo {
		price *= PayAsYouGoSurcharge
	}
	return price
}

func MonthlyPrice(total float64, durationMonths int) float64 {
	return total / float64(durationMonths)
}

func PerSessionPrice(monthlyPrice float64, sessionsPerMonth int) float64 {
	return monthlyPrice / float64(sessionsPerMonth)
}

// PayAsYouGoSessionPrice is the standalone session price, independent of any plan.
func PayAsYouGoSessionPrice(basePricePerHour float64) float64 {
	return basePricePerHour * PayAsYouGoSurcharge
}

// BillingMode decides how many sessions a plan's total price covers.
type BillingMode string

const (
	// BillingModePeriod bills sessions per month times duration months; the default
	BillingModePeriod BillingMode = "period"
	// BillingModeMonth bills only one month worth of sessions as the plan total
	BillingModeMonth BillingMode = "month"
)

func ParseBillingMode(s string) (BillingMode, error) {
	switch BillingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", BillingModePeriod:
		return BillingModePeriod, nil
	case BillingModeMonth:
		return BillingModeMonth, nil
	default:
		return "", fmt.Errorf("unknown billing mode [%s]", s)
	}
}

// SessionsInPeriod returns the number of sessions the plan total is computed for.
func (m BillingMode) SessionsInPeriod(plan PlanConfiguration) int {
	if m == BillingModeMonth {
		return plan.SessionsPerMonth
	}
	return plan.SessionsPerMonth * plan.DurationMonths
}

// Quote is the full price breakdown of one plan.
type Quote struct {
	ID                  string            `json:"id"`
	Plan                PlanConfiguration `json:"plan"`
	TrainingType        TrainingType      `json:"trainingType"`
	PrimeTime           bool              `json:"primeTime"`
	PayAsYouGo          bool              `json:"payAsYouGo"`
	SessionsInPeriod    int               `json:"sessionsInPeriod"`
	UnitPrice           float64           `json:"unitPrice"`
	TotalBeforeDiscount float64           `json:"totalBeforeDiscount"`
	DiscountAmount      float64           `json:"discountAmount"`
	Total               float64           `json:"total"`
	MonthlyPrice        float64           `json:"monthlyPrice"`
	PerSessionPrice     float64           `json:"perSessionPrice"`
	Display             QuoteDisplay      `json:"display"`
}

// QuoteDisplay holds the amounts as the clients render them: rounded to whole currency units.
type QuoteDisplay struct {
	Total           string `json:"total"`
	MonthlyPrice    string `json:"monthlyPrice"`
	PerSessionPrice string `json:"perSessionPrice"`
}

type Calculator struct {
	mode           BillingMode
	currencySymbol string
}

func NewCalculator(mode BillingMode, currencySymbol string) *Calculator {
	if mode == "" {
		mode = BillingModePeriod
	}
	return &Calculator{
		mode:           mode,
		currencySymbol: currencySymbol,
	}
}

func (c *Calculator) Mode() BillingMode {
	return c.mode
}

// Quote validates the context and the plan, and computes the plan's price breakdown.
func (c *Calculator) Quote(pc PricingContext, plan PlanConfiguration) (*Quote, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	sessions := c.mode.SessionsInPeriod(plan)
	unit := UnitPrice(pc, false)
	totalBeforeDiscount := unit * float64(sessions)
	total := ComputePlanPrice(pc, sessions, plan.DiscountPercent, false)
	monthly := MonthlyPrice(total, plan.DurationMonths)
	if c.mode == BillingModeMonth {
		// the total already covers a single month only
		monthly = total
	}
	perSession := PerSessionPrice(monthly, plan.SessionsPerMonth)

	return &Quote{
		ID:                  uuid.NewString(),
		Plan:                plan,
		TrainingType:        pc.TrainingType,
		PrimeTime:           pc.IsPrimeTime,
		PayAsYouGo:          pc.IsPayAsYouGo,
		SessionsInPeriod:    sessions,
		UnitPrice:           unit,
		TotalBeforeDiscount: totalBeforeDiscount,
		DiscountAmount:      totalBeforeDiscount * (plan.DiscountPercent / 100),
		Total:               total,
		MonthlyPrice:        monthly,
		PerSessionPrice:     perSession,
		Display: QuoteDisplay{
			Total:           FormatAmount(total, c.currencySymbol),
			MonthlyPrice:    FormatAmount(monthly, c.currencySymbol),
			PerSessionPrice: FormatAmount(perSession, c.currencySymbol),
		},
	}, nil
}

// QuoteAll quotes the plans in order, failing on the first invalid one.
func (c *Calculator) QuoteAll(pc PricingContext, plans []PlanConfiguration) ([]Quote, error) {
	quotes := make([]Quote, 0, len(plans))
	for _, plan := range plans {
		q, err := c.Quote(pc, plan)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}
