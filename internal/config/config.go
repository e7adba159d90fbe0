package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port              int    `env:"PORT" envDefault:"8000" validate:"min=1,max=65535"`
	PoolsDir          string `env:"POOLS_DIR" envDefault:"pools" validate:"required"`
	DatasetPath       string `env:"DATASET_PATH" envDefault:"pokemon_series" validate:"required"`
	ProgressionConfig string `env:"PROGRESSION_CONFIG" envDefault:"config/progression.json"`

	BinderStore       string        `env:"BINDER_STORE" envDefault:"file" validate:"oneof=file postgres sqlite"`
	BinderFile        string        `env:"BINDER_FILE" envDefault:"data/binder_state.json" validate:"required_if=BinderStore file"`
	DatabaseURL       string        `env:"DATABASE_URL" validate:"required_if=BinderStore postgres"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"data/binder.db" validate:"required_if=BinderStore sqlite"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"5" validate:"min=1"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"booster-pack"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`

	MetadataCacheSize int           `env:"METADATA_CACHE_SIZE" envDefault:"1024" validate:"min=1"`
	MetadataCacheTTL  time.Duration `env:"METADATA_CACHE_TTL" envDefault:"10m"`

	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000" envSeparator:","`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxRequestBytes int64         `env:"MAX_REQUEST_BYTES" envDefault:"1048576" validate:"min=1"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseEnv, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextValidate, err)
	}

	return cfg, nil
}
