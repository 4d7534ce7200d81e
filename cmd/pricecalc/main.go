package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/squadfit/internal/pricing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("pricecalc: %s", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pricecalc", flag.ContinueOnError)
	fs.SetOutput(out)
	base := fs.Float64("base", 0, "trainer base price per hour")
	trainingType := fs.String("type", "personal", "training type [personal | group]")
	prime := fs.Bool("prime", false, "prime time")
	payg := fs.Bool("payg", false, "also print the pay-as-you-go session price")
	mode := fs.String("mode", "period", "billing mode [period | month]")
	currency := fs.String("currency", "$", "currency symbol")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tt, err := pricing.ParseTrainingType(*trainingType)
	if err != nil {
		return err
	}
	billingMode, err := pricing.ParseBillingMode(*mode)
	if err != nil {
		return err
	}

	pc := pricing.PricingContext{
		TrainingType:     tt,
		BasePricePerHour: *base,
		IsPrimeTime:      *prime,
	}
	calculator := pricing.NewCalculator(billingMode, *currency)
	quotes, err := calculator.QuoteAll(pc, pricing.DefaultPlans())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s training, base %.2f/h, prime time: %t, billing: %s\n\n", tt, *base, *prime, billingMode)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAN\tSESSIONS\tDISCOUNT\tTOTAL\tMONTHLY\tPER SESSION\t")
	for _, q := range quotes {
		name := q.Plan.Name
		if q.Plan.Recommended {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.0f%%\t%s\t%s\t%s\t\n",
			name,
			q.SessionsInPeriod,
			q.Plan.DiscountPercent,
			q.Display.Total,
			q.Display.MonthlyPrice,
			q.Display.PerSessionPrice,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if *payg {
		unit := pricing.UnitPrice(pc, true)
		fmt.Fprintf(out, "\npay as you go: %s per session (%s with type and prime time applied)\n",
			pricing.FormatAmount(pricing.PayAsYouGoSessionPrice(*base), *currency),
			pricing.FormatAmount(unit, *currency),
		)
	}

	return nil
}
