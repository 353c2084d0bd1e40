// Package valuation derives portfolio figures from a list of assets.
//
// Every function here is pure: assets are read, never mutated, and sums are
// accumulated at full float64 precision. Rounding to currency precision is a
// presentation concern handled by package format.
package valuation

import (
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// TotalInvested sums investedAmount over all assets.
func TotalInvested(assets []model.Asset) float64 {
	total := 0.0
	for _, a := range assets {
		total += a.InvestedAmount
	}
	return total
}

// CurrentTotalValue sums currentPrice * quantity over all assets.
func CurrentTotalValue(assets []model.Asset) float64 {
	total := 0.0
	for _, a := range assets {
		total += a.CurrentValue()
	}
	return total
}

// TotalProfit is CurrentTotalValue - TotalInvested.
func TotalProfit(assets []model.Asset) float64 {
	return CurrentTotalValue(assets) - TotalInvested(assets)
}

// ProfitPercentage is TotalProfit relative to TotalInvested, in percent.
// An empty (or zero-cost) portfolio yields 0.
func ProfitPercentage(assets []model.Asset) float64 {
	return percentOf(TotalProfit(assets), TotalInvested(assets))
}

// MonthlyYieldEstimate approximates monthly coupon income as
// investedAmount * rate / 12 for every asset with a defined, non-zero rate.
//
// This is a nominal-rate approximation, not a cash-flow forecast: it ignores
// payment schedules, maturity, and price changes.
func MonthlyYieldEstimate(assets []model.Asset) float64 {
	total := 0.0
	for _, a := range assets {
		if !a.HasCoupon() {
			continue
		}
		total += a.InvestedAmount * (*a.InterestRate / 100) / 12
	}
	return total
}

// DistributionByType groups assets by type and sums their current value.
// Groups appear in the order their type is first seen. Percentage is each
// group's share of the current total value (0 when the total is 0).
func DistributionByType(assets []model.Asset) []model.TypeAllocation {
	groups := []model.TypeAllocation{}
	index := make(map[model.AssetType]int)

	for _, a := range assets {
		i, ok := index[a.Type]
		if !ok {
			i = len(groups)
			index[a.Type] = i
			groups = append(groups, model.TypeAllocation{Type: a.Type, Label: a.Type.Label()})
		}
		groups[i].Value += a.CurrentValue()
	}

	total := CurrentTotalValue(assets)
	for i := range groups {
		groups[i].Percentage = Share(groups[i].Value, total)
	}
	return groups
}

// Share returns part as a percentage of total, or 0 when total is 0.
func Share(part, total float64) float64 {
	return percentOf(part, total)
}

// Row computes the per-asset figures shown in the asset table.
// investedAmount is guaranteed positive by the data model, so no guard is applied.
func Row(a model.Asset) model.AssetValuation {
	value := a.CurrentValue()
	profit := value - a.InvestedAmount
	return model.AssetValuation{
		Asset:         a,
		CurrentValue:  value,
		Profit:        profit,
		ProfitPercent: profit / a.InvestedAmount * 100,
	}
}

// Rows applies Row to each asset, preserving order.
func Rows(assets []model.Asset) []model.AssetValuation {
	rows := make([]model.AssetValuation, len(assets))
	for i, a := range assets {
		rows[i] = Row(a)
	}
	return rows
}

// Aggregate builds the full AggregateView in one call.
func Aggregate(assets []model.Asset) model.AggregateView {
	invested := TotalInvested(assets)
	current := CurrentTotalValue(assets)
	profit := current - invested

	return model.AggregateView{
		TotalInvested:        invested,
		CurrentTotalValue:    current,
		TotalProfit:          profit,
		ProfitPercentage:     percentOf(profit, invested),
		MonthlyYieldEstimate: MonthlyYieldEstimate(assets),
		DistributionByType:   DistributionByType(assets),
	}
}

func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
