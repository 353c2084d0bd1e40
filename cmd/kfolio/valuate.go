package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/config"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/format"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

type valuateCmd struct {
	csvPath   string
	asOf      string
	chartPath string
}

func (*valuateCmd) Name() string { return "valuate" }
func (*valuateCmd) Synopsis() string {
	return "value a portfolio exported as CSV, or the demo portfolio"
}
func (*valuateCmd) Usage() string {
	return `kfolio valuate [-csv <file>] [-d <YYYY-MM-DD>] [-chart <file.png>]

  Prints every asset with its current value and profit, followed by the
  portfolio totals and the next maturity. Without -csv the demo portfolio
  is used.
`
}

func (c *valuateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvPath, "csv", "", "CSV file in the export format.")
	f.StringVar(&c.asOf, "d", "", "Reference date (defaults to today).")
	f.StringVar(&c.chartPath, "chart", "", "Write the distribution chart to this PNG file.")
}

func (c *valuateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	asOf := time.Now().UTC()
	if c.asOf != "" {
		asOf, err = time.Parse(time.DateOnly, c.asOf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	repo := repository.NewMemoryAssetRepository()
	assets := service.NewAssetService(repo)
	if err := c.load(ctx, assets); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	formatter := format.New(cfg.Display.Currency, cfg.Display.Locale)
	dashboard := service.NewDashboardService(repo, formatter)

	rows, err := assets.Rows(ctx, model.AssetFilter{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	overview, err := dashboard.Overview(ctx, asOf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Ativo\tTipo\tInvestido\tValor atual\tLucro\t%\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Asset.Name,
			r.Asset.Type.Label(),
			formatter.Currency(r.Asset.InvestedAmount),
			formatter.Currency(r.CurrentValue),
			formatter.SignedCurrency(r.Profit),
			formatter.Percent(r.ProfitPercent, 2),
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	d := overview.Display
	fmt.Printf("\nTotal investido:   %s\n", d.TotalInvested)
	fmt.Printf("Valor atual:       %s\n", d.CurrentTotalValue)
	fmt.Printf("Lucro:             %s (%s)\n", d.TotalProfit, d.ProfitPercentage)
	fmt.Printf("Rendimento mensal: %s\n", d.MonthlyYieldEstimate)

	fmt.Println("\nDistribuição por tipo:")
	for _, g := range overview.Aggregate.DistributionByType {
		fmt.Printf("  %-30s %s (%s)\n", g.Label, formatter.Currency(g.Value), formatter.Percent(g.Percentage, 1))
	}

	if m := overview.NextMaturity; m != nil {
		fmt.Println()
		fmt.Printf("Próximo vencimento: %s em %s (%d dias)\n", m.AssetName, m.MaturityDate.Format(time.DateOnly), m.DaysLeft)
	}

	if c.chartPath != "" {
		png, err := dashboard.DistributionChart(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.chartPath, png, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *valuateCmd) load(ctx context.Context, assets *service.AssetService) error {
	if c.csvPath == "" {
		_, err := assets.SeedDemo(ctx)
		return err
	}

	f, err := os.Open(c.csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = assets.ImportCSV(ctx, f)
	return err
}
