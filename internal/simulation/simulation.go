// Package simulation compares holding a fixed-income instrument to maturity
// against reinvesting its coupons.
package simulation

import (
	"math"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// MaturityValue is the simple-interest terminal value: coupons are withdrawn
// each year, so the value grows linearly with the horizon.
func MaturityValue(principal, annualRatePercent, horizonYears float64) float64 {
	return principal + principal*(annualRatePercent/100)*horizonYears
}

// ReinvestValue is the compound-interest terminal value: coupons are
// reinvested yearly at the same nominal rate.
func ReinvestValue(principal, annualRatePercent, horizonYears float64) float64 {
	return principal * math.Pow(1+annualRatePercent/100, horizonYears)
}

// ExtraFromReinvesting is the relative uplift of the reinvestment scenario
// over hold-to-maturity, in percent. A zero maturity value yields 0.
func ExtraFromReinvesting(maturityValue, reinvestValue float64) float64 {
	if maturityValue == 0 {
		return 0
	}
	return (reinvestValue - maturityValue) / maturityValue * 100
}

// Run computes both scenarios for in.
//
// Run never fails: negative rates shrink the portfolio, a zero horizon returns
// the principal for both scenarios, and non-positive principals produce
// degenerate but deterministic figures.
func Run(in model.SimulationInput) model.SimulationResult {
	maturity := MaturityValue(in.Principal, in.AnnualRatePercent, in.HorizonYears)
	reinvest := ReinvestValue(in.Principal, in.AnnualRatePercent, in.HorizonYears)

	maturityProfit := maturity - in.Principal
	reinvestProfit := reinvest - in.Principal

	return model.SimulationResult{
		MaturityValue:         maturity,
		ReinvestValue:         reinvest,
		MaturityProfit:        maturityProfit,
		ReinvestProfit:        reinvestProfit,
		MaturityProfitPercent: percentOfPrincipal(maturityProfit, in.Principal),
		ReinvestProfitPercent: percentOfPrincipal(reinvestProfit, in.Principal),
		ExtraFromReinvesting:  ExtraFromReinvesting(maturity, reinvest),
	}
}

func percentOfPrincipal(profit, principal float64) float64 {
	if principal == 0 {
		return 0
	}
	return profit / principal * 100
}
