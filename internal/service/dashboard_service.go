package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/charts"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/format"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/valuation"
)

// evolutionFactors scale total invested for the five months preceding asOf.
// The series is illustrative only; no price history is stored.
var evolutionFactors = []float64{0.98, 1.01, 1.02, 1.035, 1.05}

var monthLabels = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// DashboardService computes the dashboard view from the live asset list.
// Nothing is cached: every call re-reads the repository.
type DashboardService struct {
	repo      repository.AssetRepository
	formatter *format.Formatter
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo repository.AssetRepository, formatter *format.Formatter) *DashboardService {
	return &DashboardService{
		repo:      repo,
		formatter: formatter,
	}
}

// Overview returns the aggregate figures, the synthesized evolution series
// and the next maturity as of asOf.
func (s *DashboardService) Overview(ctx context.Context, asOf time.Time) (model.DashboardOverview, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return model.DashboardOverview{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAssets, err)
	}

	agg := valuation.Aggregate(assets)

	return model.DashboardOverview{
		AsOf:         asOf,
		Aggregate:    agg,
		Display:      s.display(agg),
		Evolution:    EvolutionSeries(agg.TotalInvested, agg.CurrentTotalValue, asOf),
		NextMaturity: NextMaturity(assets, asOf),
	}, nil
}

// EvolutionChart renders the evolution series as a PNG.
func (s *DashboardService) EvolutionChart(ctx context.Context, asOf time.Time) ([]byte, error) {
	overview, err := s.Overview(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return charts.RenderEvolution(overview.Evolution)
}

// DistributionChart renders the distribution by type as a PNG.
// Returns charts.ErrNoData for an empty or worthless portfolio.
func (s *DashboardService) DistributionChart(ctx context.Context) ([]byte, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAssets, err)
	}
	return charts.RenderDistribution(valuation.DistributionByType(assets))
}

func (s *DashboardService) display(agg model.AggregateView) model.AggregateText {
	return model.AggregateText{
		TotalInvested:        s.formatter.Currency(agg.TotalInvested),
		CurrentTotalValue:    s.formatter.Currency(agg.CurrentTotalValue),
		TotalProfit:          s.formatter.SignedCurrency(agg.TotalProfit),
		ProfitPercentage:     s.formatter.Percent(agg.ProfitPercentage, 2),
		MonthlyYieldEstimate: s.formatter.Currency(agg.MonthlyYieldEstimate),
	}
}

// EvolutionSeries builds six monthly points ending at asOf's month. The first
// five are totalInvested scaled by evolutionFactors; the last is the current value.
func EvolutionSeries(totalInvested, currentTotalValue float64, asOf time.Time) []model.EvolutionPoint {
	y, m, _ := asOf.UTC().Date()
	last := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	points := make([]model.EvolutionPoint, 0, len(evolutionFactors)+1)
	for i, f := range evolutionFactors {
		month := last.AddDate(0, i-len(evolutionFactors), 0)
		points = append(points, model.EvolutionPoint{
			Month: month,
			Label: monthLabels[month.Month()-1],
			Value: totalInvested * f,
		})
	}
	points = append(points, model.EvolutionPoint{
		Month: last,
		Label: monthLabels[last.Month()-1],
		Value: currentTotalValue,
	})
	return points
}
