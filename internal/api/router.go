package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/handlers"
	custommiddleware "github.com/kwanzafolio/kwanzafolio-backend/internal/api/middleware"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/config"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

// Services bundles the dependencies the HTTP layer serves.
type Services struct {
	System    *service.SystemService
	Session   *service.SessionService
	Asset     *service.AssetService
	Dashboard *service.DashboardService
	Simulator *service.SimulatorService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, logger *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(svc.System)
	sessionHandler := handlers.NewSessionHandler(svc.Session)
	assetHandler := handlers.NewAssetHandler(svc.Asset)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	simulatorHandler := handlers.NewSimulatorHandler(svc.Simulator)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/session", func(r chi.Router) {
			r.Post("/login", sessionHandler.Login)
			r.Post("/register", sessionHandler.Register)
			r.Post("/recover", sessionHandler.Recover)
			r.Post("/logout", sessionHandler.Logout)
		})

		// Everything below needs a signed-in user
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireSession(svc.Session))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", sessionHandler.Profile)
				r.Put("/subscription", sessionHandler.ChangePlan)
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", assetHandler.Assets)
				r.Post("/", assetHandler.CreateAsset)
				r.Get("/export", assetHandler.ExportCSV)
				r.Post("/import", assetHandler.ImportCSV)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", assetHandler.GetAsset)
					r.Put("/", assetHandler.ReplaceAsset)
					r.Delete("/", assetHandler.DeleteAsset)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", dashboardHandler.Overview)
				r.Get("/charts/evolution.png", dashboardHandler.EvolutionChart)
				r.Get("/charts/distribution.png", dashboardHandler.DistributionChart)
			})

			r.Route("/simulator", func(r chi.Router) {
				r.Post("/run", simulatorHandler.Run)
				r.Get("/insight", simulatorHandler.Insight)
			})
		})
	})

	return r
}
