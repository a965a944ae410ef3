package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	StorageBackend  string   `mapstructure:"STORAGE_BACKEND"`
	StoragePath     string   `mapstructure:"STORAGE_PATH"`
	StorageSlot     string   `mapstructure:"STORAGE_SLOT"`
	DatabaseURL     string   `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32    `mapstructure:"DB_MIN_CONNS"`
	AuthSecret      string   `mapstructure:"AUTH_SECRET"`
	TokenTTLMinutes int      `mapstructure:"TOKEN_TTL_MINUTES"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	DemoLatencyMS   int      `mapstructure:"DEMO_LATENCY_MS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORAGE_BACKEND", BackendFile)
	v.SetDefault("STORAGE_PATH", "healthsight-db.json")
	v.SetDefault("STORAGE_SLOT", "healthsight-db-v1")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("TOKEN_TTL_MINUTES", 480)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEMO_LATENCY_MS", 0)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("STORAGE_BACKEND")
	v.BindEnv("STORAGE_PATH")
	v.BindEnv("STORAGE_SLOT")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("TOKEN_TTL_MINUTES")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("DEMO_LATENCY_MS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func (c *Config) DemoLatency() time.Duration {
	return time.Duration(c.DemoLatencyMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run. The postgres backend
// needs a connection string; outside development a real AUTH_SECRET must be
// set so issued tokens cannot be forged.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendFile, BackendPostgres:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q, %q or %q, got %q",
			BackendMemory, BackendFile, BackendPostgres, c.StorageBackend)
	}
	if c.StorageBackend == BackendPostgres && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND is %q", BackendPostgres)
	}
	if c.StorageBackend == BackendFile && c.StoragePath == "" {
		return fmt.Errorf("STORAGE_PATH is required when STORAGE_BACKEND is %q", BackendFile)
	}
	if !c.IsDev() && c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required outside development")
	}
	return nil
}
