package model

// SimulationInput holds the four simulator parameters. It is never persisted.
type SimulationInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	HorizonYears      float64 `json:"horizonYears"`
	Label             string  `json:"label"`
}

// SimulationResult compares hold-to-maturity (simple interest) against
// reinvesting coupons (compound interest).
type SimulationResult struct {
	MaturityValue         float64 `json:"maturityValue"`
	ReinvestValue         float64 `json:"reinvestValue"`
	MaturityProfit        float64 `json:"maturityProfit"`
	ReinvestProfit        float64 `json:"reinvestProfit"`
	MaturityProfitPercent float64 `json:"maturityProfitPercent"`
	ReinvestProfitPercent float64 `json:"reinvestProfitPercent"`
	ExtraFromReinvesting  float64 `json:"extraFromReinvesting"`
}

// InsightStatus is the state of the advisory text for a simulation run.
type InsightStatus string

const (
	InsightNone    InsightStatus = "none"
	InsightPending InsightStatus = "pending"
	InsightReady   InsightStatus = "ready"
)

// Insight is the advisory commentary attached to the latest simulation run.
type Insight struct {
	Sequence uint64        `json:"sequence"`
	Status   InsightStatus `json:"status"`
	Text     string        `json:"text,omitempty"`
}

// SimulationRun is what the simulator returns immediately: the numbers, plus
// the sequence number under which the advisory text will be published.
type SimulationRun struct {
	Sequence uint64           `json:"sequence"`
	Input    SimulationInput  `json:"input"`
	Result   SimulationResult `json:"result"`
	Display  SimulationText   `json:"display"`
}

// SimulationText holds the formatted figures for the two scenario cards.
type SimulationText struct {
	MaturityValue        string `json:"maturityValue"`
	ReinvestValue        string `json:"reinvestValue"`
	MaturityProfit       string `json:"maturityProfit"`
	ReinvestProfit       string `json:"reinvestProfit"`
	ExtraFromReinvesting string `json:"extraFromReinvesting"`
}
