package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/response"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/charts"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

// DashboardHandler serves the dashboard cards and charts.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	now              func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// asOf reads the optional asOf query parameter, defaulting to today.
func (h *DashboardHandler) asOf(r *http.Request) (time.Time, error) {
	if v := r.URL.Query().Get("asOf"); v != "" {
		return time.Parse(time.DateOnly, v)
	}
	y, m, d := h.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Overview handles GET requests for the dashboard figures.
//
// Endpoint: GET /api/dashboard
// Query Parameters:
//   - asOf: optional reference date (YYYY-MM-DD), defaults to today
//
// Response: 200 OK with DashboardOverview
// Error: 400 Bad Request if asOf is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid asOf date", err.Error())
		return
	}

	overview, err := h.dashboardService.Overview(r.Context(), asOf)
	if err != nil {
		respondInternal(w, r, apperrors.ErrFailedToRetrieveAssets.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}

// EvolutionChart renders the portfolio evolution line chart.
//
// Endpoint: GET /api/dashboard/charts/evolution.png
// Query Parameters:
//   - asOf: optional reference date (YYYY-MM-DD)
//
// Response: 200 OK with image/png
// Error: 400 Bad Request if asOf is malformed
// Error: 500 Internal Server Error if rendering fails
func (h *DashboardHandler) EvolutionChart(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid asOf date", err.Error())
		return
	}

	png, err := h.dashboardService.EvolutionChart(r.Context(), asOf)
	if err != nil {
		respondInternal(w, r, apperrors.ErrFailedToRenderChart.Error(), err)
		return
	}

	response.RespondBytes(w, http.StatusOK, "image/png", png)
}

// DistributionChart renders the distribution-by-type pie chart.
//
// Endpoint: GET /api/dashboard/charts/distribution.png
// Response: 200 OK with image/png
// Response: 204 No Content when there is nothing to draw
// Error: 500 Internal Server Error if rendering fails
func (h *DashboardHandler) DistributionChart(w http.ResponseWriter, r *http.Request) {
	png, err := h.dashboardService.DistributionChart(r.Context())
	if err != nil {
		if errors.Is(err, charts.ErrNoData) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondInternal(w, r, apperrors.ErrFailedToRenderChart.Error(), err)
		return
	}

	response.RespondBytes(w, http.StatusOK, "image/png", png)
}
