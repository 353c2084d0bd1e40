package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/advisory"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/config"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/format"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/validation"
)

type simulateCmd struct {
	principal float64
	rate      float64
	years     float64
	label     string
	wait      bool
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "compare holding to maturity against reinvesting coupons"
}
func (*simulateCmd) Usage() string {
	return `kfolio simulate [-principal <amount>] [-rate <percent>] [-years <n>] [-label <title>] [-wait]

  Prints the simple-interest and compound-interest outcomes for the given
  principal, and optionally the advisory commentary.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 1000000, "Amount invested.")
	f.Float64Var(&c.rate, "rate", 16.5, "Annual rate in percent.")
	f.Float64Var(&c.years, "years", 5, "Horizon in years.")
	f.StringVar(&c.label, "label", "", "Title name passed to the advisor.")
	f.BoolVar(&c.wait, "wait", false, "Wait for the advisory commentary (needs GEMINI_API_KEY).")
}

func (c *simulateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	in := model.SimulationInput{
		Principal:         c.principal,
		AnnualRatePercent: c.rate,
		HorizonYears:      c.years,
		Label:             c.label,
	}
	if err := validation.ValidateSimulationInput(in); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	log := zap.NewNop().Sugar()
	advisor := advisory.NewAdvisor(nil)
	if c.wait {
		advisor = advisory.NewFromKey(ctx, cfg.Advisory.APIKey, cfg.Advisory.Model,
			advisory.WithTimeout(cfg.Advisory.Timeout),
			advisory.WithLogger(log),
		)
	}
	formatter := format.New(cfg.Display.Currency, cfg.Display.Locale)
	svc := service.NewSimulatorService(advisor, formatter, log)
	defer svc.Close()

	var (
		run  model.SimulationRun
		text string
	)
	if c.wait {
		run, text = svc.RunAndWait(ctx, in)
	} else {
		run = svc.Run(in)
	}

	fmt.Printf("Capital:                 %s\n", formatter.Currency(in.Principal))
	fmt.Printf("Taxa anual:              %s\n", formatter.Percent(in.AnnualRatePercent, 2))
	fmt.Printf("Prazo:                   %g anos\n\n", in.HorizonYears)
	fmt.Printf("Manter até maturidade:   %s (lucro %s, %s)\n",
		run.Display.MaturityValue, run.Display.MaturityProfit, formatter.Percent(run.Result.MaturityProfitPercent, 2))
	fmt.Printf("Reinvestir cupões:       %s (lucro %s, %s)\n",
		run.Display.ReinvestValue, run.Display.ReinvestProfit, formatter.Percent(run.Result.ReinvestProfitPercent, 2))
	fmt.Printf("Ganho extra:             %s\n", run.Display.ExtraFromReinvesting)
	if c.wait {
		fmt.Printf("\n%s\n", text)
	}
	return subcommands.ExitSuccess
}
