package service

import (
	"context"
	"database/sql"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/database"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB // nil for the in-memory store
	repo     repository.AssetRepository
	advisory bool
}

// NewSystemService creates a new SystemService. db may be nil when assets are
// kept in memory.
func NewSystemService(db *sql.DB, repo repository.AssetRepository, advisoryConfigured bool) *SystemService {
	return &SystemService{
		db:       db,
		repo:     repo,
		advisory: advisoryConfigured,
	}
}

// CheckHealth checks the asset store.
func (s *SystemService) CheckHealth(ctx context.Context) error {
	if s.db != nil {
		return database.HealthCheck(s.db)
	}
	_, err := s.repo.Count(ctx)
	return err
}

// CheckVersion reports the build version and feature availability.
func (s *SystemService) CheckVersion() model.VersionInfo {
	store := "memory"
	if s.db != nil {
		store = "sqlite"
	}
	return model.VersionInfo{
		AppVersion: version.Version,
		Store:      store,
		Features: map[string]bool{
			"advisory":       s.advisory,
			"csv_import":     true,
			"charts":         true,
			"maturity_watch": true,
		},
	}
}
