package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/middleware"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/logger"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var ctxLogger *zap.SugaredLogger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	h := chimiddleware.RequestID(middleware.Logger(zap.New(core).Sugar())(next))

	req := httptest.NewRequest(http.MethodGet, "/api/assets%0A", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("Expected status 418, got %v", fields["status"])
	}
	if fields["path"] != "/api/assets" {
		t.Errorf("Expected sanitized path, got %q", fields["path"])
	}
	if fields["request_id"] == "" {
		t.Error("Expected a request id")
	}
	if ctxLogger == nil {
		t.Error("Expected a request-scoped logger on the context")
	}
}
