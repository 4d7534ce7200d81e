package pricing

const DefaultSessionsPerMonth = 8

// DefaultPlans are the stock plan tiers offered to a trainer without a custom plan table.
func DefaultPlans() []PlanConfiguration {
	return []PlanConfiguration{
		{
			Name:             "1 Month",
			DurationMonths:   1,
			SessionsPerMonth: DefaultSessionsPerMonth,
			DiscountPercent:  0,
		},
		{
			Name:             "3 Months",
			DurationMonths:   3,
			SessionsPerMonth: DefaultSessionsPerMonth,
			DiscountPercent:  5,
		},
		{
			Name:             "6 Months",
			DurationMonths:   6,
			SessionsPerMonth: DefaultSessionsPerMonth,
			DiscountPercent:  10,
			Recommended:      true,
		},
		{
			Name:             "12 Months",
			DurationMonths:   12,
			SessionsPerMonth: DefaultSessionsPerMonth,
			DiscountPercent:  15,
		},
	}
}
