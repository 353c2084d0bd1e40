package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/advisory"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/api"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/config"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/database"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/format"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/logger"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/scheduler"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sugar := logger.New(cfg.App.Env)
	defer func() { _ = sugar.Sync() }()
	zap.ReplaceGlobals(sugar.Desugar())

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server exited with error", "error", err)
	}
	sugar.Info("server exited")
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create repository
	var (
		repo repository.AssetRepository
		db   *sql.DB
	)
	switch cfg.Store.Kind {
	case config.StoreSQLite:
		conn, err := database.Open(cfg.Store.DBPath)
		if err != nil {
			return err
		}
		defer conn.Close()
		db = conn
		repo = repository.NewSQLiteAssetRepository(conn)
		sugar.Infow("connected to database", "path", cfg.Store.DBPath)
	default:
		repo = repository.NewMemoryAssetRepository()
		sugar.Info("using in-memory asset store")
	}

	formatter := format.New(cfg.Display.Currency, cfg.Display.Locale)
	advisor := advisory.NewFromKey(ctx, cfg.Advisory.APIKey, cfg.Advisory.Model,
		advisory.WithTimeout(cfg.Advisory.Timeout),
		advisory.WithLogger(sugar.Named("advisory")),
	)
	if !advisor.Configured() {
		sugar.Warn("no advisory API key configured; simulator insights will use the fallback text")
	}

	// Create services
	assetService := service.NewAssetService(repo)
	simulatorService := service.NewSimulatorService(advisor, formatter, sugar.Named("simulator"))
	defer simulatorService.Close()

	svc := api.Services{
		System:    service.NewSystemService(db, repo, advisor.Configured()),
		Session:   service.NewSessionService(),
		Asset:     assetService,
		Dashboard: service.NewDashboardService(repo, formatter),
		Simulator: simulatorService,
	}

	if cfg.Seed.DemoData {
		n, err := assetService.SeedDemo(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			sugar.Infow("seeded demo portfolio", "assets", n)
		}
	}

	watcher, err := scheduler.NewMaturityWatcher(repo, cfg.Scheduler.MaturitySchedule, cfg.Scheduler.MaturityWindow, sugar.Named("scheduler"))
	if err != nil {
		return err
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(svc, cfg, sugar),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return watcher.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		sugar.Info("shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
