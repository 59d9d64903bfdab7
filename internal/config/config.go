// Package config loads the storefront configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/timursarsembai/crochet-shop/pkg/config"
)

// CatalogBackend selects where the product catalog is served from.
type CatalogBackend string

const (
	CatalogMemory   CatalogBackend = "memory"
	CatalogPostgres CatalogBackend = "postgres"
)

// Config is the full storefront configuration.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"crochet-shop"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP      HTTPConfig
	Redis     RedisConfig
	Catalog   CatalogConfig
	Postgres  PostgresConfig
	Kafka     KafkaConfig
	Checkout  CheckoutConfig
	Telemetry TelemetryConfig
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// RedisConfig configures the session store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// SessionTTL bounds how long an idle session keeps its cart, wishlist,
	// and navigation state. Defaults to a week.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

// CatalogConfig selects the catalog backend.
type CatalogConfig struct {
	Backend CatalogBackend `env:"CATALOG_BACKEND" envDefault:"memory"`
}

// PostgresConfig configures the optional catalog database.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"shop"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"shop"`
	Database string `env:"POSTGRES_DB" envDefault:"crochet_shop"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// KafkaConfig configures the event stream.
type KafkaConfig struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
}

// CheckoutConfig tunes the order lifecycle timing.
type CheckoutConfig struct {
	// ProcessingDelay is how long a placed order stays in processing before
	// it completes.
	ProcessingDelay time.Duration `env:"CHECKOUT_PROCESSING_DELAY" envDefault:"2s"`

	// RedirectDelay is how long after completion the session's view returns
	// to the home page.
	RedirectDelay time.Duration `env:"CHECKOUT_REDIRECT_DELAY" envDefault:"3s"`
}

// TelemetryConfig configures tracing.
type TelemetryConfig struct {
	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.Catalog.Backend != CatalogMemory && cfg.Catalog.Backend != CatalogPostgres {
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}

	return &cfg, nil
}
