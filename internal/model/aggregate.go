package model

import "time"

// TypeAllocation is one group of the distribution-by-type breakdown.
type TypeAllocation struct {
	Type       AssetType `json:"type"`
	Label      string    `json:"label"`
	Value      float64   `json:"value"`
	Percentage float64   `json:"percentage"` // share of the current total value, 0 when the total is 0
}

// AggregateView holds the portfolio-wide figures derived from the live asset list.
// It is recomputed on every read and never stored.
type AggregateView struct {
	TotalInvested        float64          `json:"totalInvested"`
	CurrentTotalValue    float64          `json:"currentTotalValue"`
	TotalProfit          float64          `json:"totalProfit"`
	ProfitPercentage     float64          `json:"profitPercentage"`
	MonthlyYieldEstimate float64          `json:"monthlyYieldEstimate"`
	DistributionByType   []TypeAllocation `json:"distributionByType"`
}

// EvolutionPoint is one month on the synthesized evolution chart.
type EvolutionPoint struct {
	Month time.Time `json:"month"`
	Label string    `json:"label"`
	Value float64   `json:"value"`
}

// MaturityEvent is an asset reaching its maturity date.
type MaturityEvent struct {
	AssetID      string    `json:"assetId"`
	AssetName    string    `json:"assetName"`
	MaturityDate time.Time `json:"maturityDate"`
	DaysLeft     int       `json:"daysLeft"`
}

// DashboardOverview is everything the dashboard view renders.
type DashboardOverview struct {
	AsOf         time.Time        `json:"asOf"`
	Aggregate    AggregateView    `json:"aggregate"`
	Display      AggregateText    `json:"display"`
	Evolution    []EvolutionPoint `json:"evolution"`
	NextMaturity *MaturityEvent   `json:"nextMaturity,omitempty"`
}

// AggregateText holds the dashboard card figures rendered for display.
type AggregateText struct {
	TotalInvested        string `json:"totalInvested"`
	CurrentTotalValue    string `json:"currentTotalValue"`
	TotalProfit          string `json:"totalProfit"`
	ProfitPercentage     string `json:"profitPercentage"`
	MonthlyYieldEstimate string `json:"monthlyYieldEstimate"`
}
