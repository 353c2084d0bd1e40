package handlers

import (
	"net/http"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/response"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/validation"
)

// Simulator form defaults.
const (
	DefaultPrincipal         = 1000000
	DefaultAnnualRatePercent = 16.5
	DefaultHorizonYears      = 5
)

// SimulatorHandler serves the yield simulator.
type SimulatorHandler struct {
	simulatorService *service.SimulatorService
}

// NewSimulatorHandler creates a new SimulatorHandler.
func NewSimulatorHandler(simulatorService *service.SimulatorService) *SimulatorHandler {
	return &SimulatorHandler{
		simulatorService: simulatorService,
	}
}

// Run computes both scenarios and starts the advisory request.
// The advisory text is not part of the response; poll Insight for it.
//
// Endpoint: POST /api/simulator/run
// Request Body: SimulationRequest (all fields optional)
// Response: 202 Accepted with SimulationRun
// Error: 400 Bad Request if validation fails
func (h *SimulatorHandler) Run(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SimulationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	in := simulationInput(req)
	if err := validation.ValidateSimulationInput(in); err != nil {
		respondValidation(w, err)
		return
	}

	response.RespondJSON(w, http.StatusAccepted, h.simulatorService.Run(in))
}

// Insight returns the advisory state of the latest simulation.
//
// Endpoint: GET /api/simulator/insight
// Response: 200 OK with Insight
func (h *SimulatorHandler) Insight(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.simulatorService.Insight())
}

func simulationInput(req request.SimulationRequest) model.SimulationInput {
	in := model.SimulationInput{
		Principal:         DefaultPrincipal,
		AnnualRatePercent: DefaultAnnualRatePercent,
		HorizonYears:      DefaultHorizonYears,
		Label:             req.Label,
	}
	if req.Principal != nil {
		in.Principal = *req.Principal
	}
	if req.AnnualRatePercent != nil {
		in.AnnualRatePercent = *req.AnnualRatePercent
	}
	if req.HorizonYears != nil {
		in.HorizonYears = *req.HorizonYears
	}
	return in
}
