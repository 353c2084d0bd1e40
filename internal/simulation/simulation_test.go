package simulation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/simulation"
)

func TestRun_ReferenceScenario(t *testing.T) {
	in := model.SimulationInput{Principal: 1_000_000, AnnualRatePercent: 16.5, HorizonYears: 5}

	got := simulation.Run(in)

	assert.InDelta(t, 1_825_000.0, got.MaturityValue, 1e-6)
	assert.InDelta(t, 2_145_999.55, got.ReinvestValue, 0.005)
	assert.InDelta(t, 825_000.0, got.MaturityProfit, 1e-6)
	assert.InDelta(t, 1_145_999.55, got.ReinvestProfit, 0.005)
	assert.InDelta(t, 82.5, got.MaturityProfitPercent, 1e-9)
	assert.InDelta(t, 17.589, got.ExtraFromReinvesting, 0.001)
}

func TestRun_EdgeCases(t *testing.T) {
	tests := []struct {
		name         string
		in           model.SimulationInput
		wantMaturity float64
		wantReinvest float64
		wantExtra    float64
	}{
		{
			name:         "zero horizon returns principal",
			in:           model.SimulationInput{Principal: 500_000, AnnualRatePercent: 12, HorizonYears: 0},
			wantMaturity: 500_000,
			wantReinvest: 500_000,
			wantExtra:    0,
		},
		{
			name:         "zero rate keeps principal",
			in:           model.SimulationInput{Principal: 250_000, AnnualRatePercent: 0, HorizonYears: 10},
			wantMaturity: 250_000,
			wantReinvest: 250_000,
			wantExtra:    0,
		},
		{
			name:         "negative rate shrinks",
			in:           model.SimulationInput{Principal: 100_000, AnnualRatePercent: -10, HorizonYears: 2},
			wantMaturity: 80_000,
			wantReinvest: 81_000,
			wantExtra:    1.25,
		},
		{
			name:         "zero principal is degenerate, not an error",
			in:           model.SimulationInput{Principal: 0, AnnualRatePercent: 16.5, HorizonYears: 5},
			wantMaturity: 0,
			wantReinvest: 0,
			wantExtra:    0,
		},
		{
			name:         "negative principal is deterministic",
			in:           model.SimulationInput{Principal: -1000, AnnualRatePercent: 10, HorizonYears: 1},
			wantMaturity: -1100,
			wantReinvest: -1100,
			wantExtra:    0,
		},
		{
			name:         "fractional horizon accepted",
			in:           model.SimulationInput{Principal: 1000, AnnualRatePercent: 21, HorizonYears: 0.5},
			wantMaturity: 1105,
			wantReinvest: 1100,
			wantExtra:    (1100.0 - 1105.0) / 1105.0 * 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := simulation.Run(tt.in)

			assert.InDelta(t, tt.wantMaturity, got.MaturityValue, 1e-6)
			assert.InDelta(t, tt.wantReinvest, got.ReinvestValue, 1e-6)
			assert.InDelta(t, tt.wantExtra, got.ExtraFromReinvesting, 1e-6)
			assert.False(t, math.IsNaN(got.MaturityProfitPercent))
			assert.False(t, math.IsNaN(got.ReinvestProfitPercent))
		})
	}
}

func TestRun_Idempotent(t *testing.T) {
	in := model.SimulationInput{Principal: 1_234_567.89, AnnualRatePercent: 13.37, HorizonYears: 17, Label: "OT 2040"}

	first := simulation.Run(in)
	second := simulation.Run(in)

	assert.Equal(t, first, second)
}

func TestReinvestValue_StrictlyIncreasingInRate(t *testing.T) {
	for _, years := range []float64{1, 2, 5, 20} {
		prev := simulation.ReinvestValue(1_000_000, 0, years)
		for rate := 0.5; rate <= 40; rate += 0.5 {
			cur := simulation.ReinvestValue(1_000_000, rate, years)
			if cur <= prev {
				t.Fatalf("ReinvestValue not increasing at rate=%v years=%v: %v <= %v", rate, years, cur, prev)
			}
			prev = cur
		}
	}
}

func TestCompoundAtLeastSimple(t *testing.T) {
	for years := 1.0; years <= 20; years++ {
		for rate := 0.0; rate <= 30; rate += 2.5 {
			m := simulation.MaturityValue(1_000_000, rate, years)
			r := simulation.ReinvestValue(1_000_000, rate, years)
			if r < m-1e-6 {
				t.Errorf("rate=%v years=%v: reinvest %v < maturity %v", rate, years, r, m)
			}
		}
	}

	// one year of compounding equals simple interest
	assert.InDelta(t,
		simulation.MaturityValue(1_000_000, 16.5, 1),
		simulation.ReinvestValue(1_000_000, 16.5, 1),
		1e-6,
	)
}

func TestExtraFromReinvesting(t *testing.T) {
	assert.Equal(t, 0.0, simulation.ExtraFromReinvesting(0, 123))
	assert.InDelta(t, 10.0, simulation.ExtraFromReinvesting(100, 110), 1e-9)
}
