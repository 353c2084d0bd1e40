package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/advisory"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/testutil"
)

func TestSimulatorHandler_Run(t *testing.T) {
	t.Run("empty body uses the form defaults", func(t *testing.T) {
		// Setup
		svc := testutil.NewTestSimulatorService(t, &testutil.FakeGenerator{Text: "Boa escolha."})
		handler := NewSimulatorHandler(svc)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/simulator/run", nil, nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Run(w, req)

		// Assert
		if w.Code != http.StatusAccepted {
			t.Fatalf("Expected 202, got %d: %s", w.Code, w.Body.String())
		}
		run := testutil.DecodeJSON[model.SimulationRun](t, w)
		if run.Input.Principal != 1_000_000 || run.Input.AnnualRatePercent != 16.5 || run.Input.HorizonYears != 5 {
			t.Errorf("Expected defaults, got %+v", run.Input)
		}
		if math.Abs(run.Result.MaturityValue-1_825_000) > 1e-6 {
			t.Errorf("Expected maturity value 1825000, got %v", run.Result.MaturityValue)
		}
		if run.Display.ReinvestValue != "$2,145,999.55" {
			t.Errorf("Expected $2,145,999.55, got %q", run.Display.ReinvestValue)
		}
		if run.Sequence != 1 {
			t.Errorf("Expected sequence 1, got %d", run.Sequence)
		}
	})

	t.Run("invalid principal is 400", func(t *testing.T) {
		handler := NewSimulatorHandler(testutil.NewTestSimulatorService(t, nil))
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/simulator/run",
			request.SimulationRequest{Principal: testutil.Float(0)}, nil)
		w := httptest.NewRecorder()

		handler.Run(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("zero horizon gives zero profit", func(t *testing.T) {
		handler := NewSimulatorHandler(testutil.NewTestSimulatorService(t, nil))
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/simulator/run",
			request.SimulationRequest{HorizonYears: testutil.Float(0)}, nil)
		w := httptest.NewRecorder()

		handler.Run(w, req)

		run := testutil.DecodeJSON[model.SimulationRun](t, w)
		if run.Result.MaturityProfit != 0 || run.Result.ReinvestProfit != 0 {
			t.Errorf("Expected no profit, got %+v", run.Result)
		}
	})
}

func TestSimulatorHandler_Insight(t *testing.T) {
	t.Run("none before any run", func(t *testing.T) {
		handler := NewSimulatorHandler(testutil.NewTestSimulatorService(t, nil))

		w := httptest.NewRecorder()
		handler.Insight(w, httptest.NewRequest(http.MethodGet, "/api/simulator/insight", nil))

		got := testutil.DecodeJSON[model.Insight](t, w)
		if got.Status != model.InsightNone {
			t.Errorf("Expected status none, got %q", got.Status)
		}
	})

	t.Run("ready after the advisor replies", func(t *testing.T) {
		svc := testutil.NewTestSimulatorService(t, &testutil.FakeGenerator{Text: "Reinvestir compensa."})
		handler := NewSimulatorHandler(svc)
		runSimulation(t, handler, svc)

		w := httptest.NewRecorder()
		handler.Insight(w, httptest.NewRequest(http.MethodGet, "/api/simulator/insight", nil))

		got := testutil.DecodeJSON[model.Insight](t, w)
		if got.Status != model.InsightReady || got.Text != "Reinvestir compensa." {
			t.Errorf("Expected ready insight, got %+v", got)
		}
	})

	t.Run("missing credential gives the fallback text", func(t *testing.T) {
		svc := testutil.NewTestSimulatorService(t, nil)
		handler := NewSimulatorHandler(svc)
		runSimulation(t, handler, svc)

		w := httptest.NewRecorder()
		handler.Insight(w, httptest.NewRequest(http.MethodGet, "/api/simulator/insight", nil))

		got := testutil.DecodeJSON[model.Insight](t, w)
		if got.Text != advisory.FallbackNoCredential {
			t.Errorf("Expected fallback text, got %q", got.Text)
		}
	})
}

func runSimulation(t *testing.T, handler *SimulatorHandler, svc *service.SimulatorService) {
	t.Helper()

	w := httptest.NewRecorder()
	handler.Run(w, testutil.NewJSONRequest(t, http.MethodPost, "/api/simulator/run", nil, nil))
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d: %s", w.Code, w.Body.String())
	}
	svc.Wait()
}
