package request

// SimulationRequest is the body of POST /api/simulator/run.
// Omitted numbers take the simulator form defaults.
type SimulationRequest struct {
	Principal         *float64 `json:"principal,omitempty"`
	AnnualRatePercent *float64 `json:"annualRatePercent,omitempty"`
	HorizonYears      *float64 `json:"horizonYears,omitempty"`
	Label             string   `json:"label"`
}
