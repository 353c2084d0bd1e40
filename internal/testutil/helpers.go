package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/advisory"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/format"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

// NewTestFormatter returns the formatter used by service and handler tests.
// USD/en-US keeps the expected strings readable.
func NewTestFormatter() *format.Formatter {
	return format.New("USD", "en-US")
}

func NewTestAssetService(t *testing.T, repo repository.AssetRepository) *service.AssetService {
	t.Helper()
	return service.NewAssetService(repo)
}

func NewTestDashboardService(t *testing.T, repo repository.AssetRepository) *service.DashboardService {
	t.Helper()
	return service.NewDashboardService(repo, NewTestFormatter())
}

// NewTestSimulatorService builds a simulator around gen. A nil gen gives an
// advisor without credentials. Outstanding requests are cancelled on cleanup.
func NewTestSimulatorService(t *testing.T, gen advisory.Generator) *service.SimulatorService {
	t.Helper()

	var advisor *advisory.Advisor
	if gen != nil {
		advisor = advisory.NewAdvisor(gen, advisory.WithTimeout(2*time.Second))
	} else {
		advisor = advisory.NewAdvisor(nil)
	}

	svc := service.NewSimulatorService(advisor, NewTestFormatter(), nil)
	t.Cleanup(svc.Close)
	return svc
}

func NewTestSystemService(t *testing.T, db *sql.DB, repo repository.AssetRepository) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db, repo, false)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeAssetName generates a unique asset name for testing.
//
// Example usage:
//
//	name := testutil.MakeAssetName("OT")
//	// Returns: "OT ABC123"
func MakeAssetName(base string) string {
	if base == "" {
		base = "Asset"
	}
	return base + " " + randomAlphanumeric(6)
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Float returns a pointer to f, for optional request fields.
func Float(f float64) *float64 {
	return &f
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
