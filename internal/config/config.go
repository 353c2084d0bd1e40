package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Store kinds accepted by ASSET_STORE.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// ErrDecryptAPIKey is returned when GEMINI_API_KEY_ENCRYPTED cannot be opened with FERNET_KEY.
var ErrDecryptAPIKey = errors.New("failed to decrypt advisory API key")

// Config holds all configuration for the application
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Store     StoreConfig
	CORS      CORSConfig
	Advisory  AdvisoryConfig
	Display   DisplayConfig
	Seed      SeedConfig
	Scheduler SchedulerConfig
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Env string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// StoreConfig selects the asset repository backend
type StoreConfig struct {
	Kind   string
	DBPath string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AdvisoryConfig holds the generative model settings. An empty APIKey is valid.
type AdvisoryConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DisplayConfig drives the currency formatting boundary
type DisplayConfig struct {
	Currency string
	Locale   string
}

// SeedConfig controls loading of the demo portfolio
type SeedConfig struct {
	DemoData bool
}

// SchedulerConfig holds the maturity watcher settings
type SchedulerConfig struct {
	MaturitySchedule string
	MaturityWindow   time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "prod"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Store: StoreConfig{
			Kind:   strings.ToLower(getEnv("ASSET_STORE", StoreMemory)),
			DBPath: getEnv("DB_PATH", ":memory:"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Advisory: AdvisoryConfig{
			Model: getEnv("ADVISORY_MODEL", "gemini-2.5-flash"),
		},
		Display: DisplayConfig{
			Currency: getEnv("DISPLAY_CURRENCY", "AOA"),
			Locale:   getEnv("DISPLAY_LOCALE", "pt-AO"),
		},
		Scheduler: SchedulerConfig{
			MaturitySchedule: getEnv("MATURITY_WATCH_SCHEDULE", "0 8 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if config.Store.Kind != StoreMemory && config.Store.Kind != StoreSQLite {
		return nil, fmt.Errorf("invalid ASSET_STORE %q: want %s or %s", config.Store.Kind, StoreMemory, StoreSQLite)
	}

	timeout, err := time.ParseDuration(getEnv("ADVISORY_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVISORY_TIMEOUT: %w", err)
	}
	config.Advisory.Timeout = timeout

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}
	config.Seed.DemoData = seed

	days, err := strconv.Atoi(getEnv("MATURITY_WATCH_WINDOW_DAYS", "30"))
	if err != nil || days < 0 {
		return nil, fmt.Errorf("invalid MATURITY_WATCH_WINDOW_DAYS %q", os.Getenv("MATURITY_WATCH_WINDOW_DAYS"))
	}
	config.Scheduler.MaturityWindow = time.Duration(days) * 24 * time.Hour

	apiKey, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}
	config.Advisory.APIKey = apiKey

	return config, nil
}

// resolveAPIKey prefers the plain GEMINI_API_KEY and otherwise opens
// GEMINI_API_KEY_ENCRYPTED, a fernet token, with FERNET_KEY.
func resolveAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}

	token := strings.TrimSpace(os.Getenv("GEMINI_API_KEY_ENCRYPTED"))
	if token == "" {
		return "", nil
	}

	keys, err := fernet.DecodeKeys(strings.Split(os.Getenv("FERNET_KEY"), ",")...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptAPIKey, err)
	}

	plain := fernet.VerifyAndDecrypt([]byte(token), -1, keys)
	if plain == nil {
		return "", ErrDecryptAPIKey
	}
	return string(plain), nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
