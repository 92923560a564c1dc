package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (provider URLs, retry policy, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Providers ProvidersConfig
	Ingest    IngestConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// ProvidersConfig points at the two outbound collaborators: the postal-code
// lookup and the exchange-rate API. Both are plain HTTP JSON endpoints.
type ProvidersConfig struct {
	CepBaseURL   string        `envconfig:"PROVIDER_CEP_BASE_URL" default:"https://viacep.com.br/ws"`
	RatesBaseURL string        `envconfig:"PROVIDER_RATES_BASE_URL" default:"https://api.frankfurter.app"`
	Timeout      time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"5s"`
}

// IngestConfig tunes the ingestion pipeline. DuplicatePolicy decides what a
// repeated idempotency key does: "reject" returns a client error, "replay"
// returns the previously persisted order. Exactly one policy is active.
type IngestConfig struct {
	DuplicatePolicy   string        `envconfig:"INGEST_DUPLICATE_POLICY" default:"reject"`
	MaxAttempts       int           `envconfig:"INGEST_RETRY_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay    time.Duration `envconfig:"INGEST_RETRY_BASE_DELAY" default:"200ms"`
	EnrichmentTimeout time.Duration `envconfig:"INGEST_ENRICHMENT_TIMEOUT" default:"10s"`
}

const (
	DuplicatePolicyReject = "reject"
	DuplicatePolicyReplay = "replay"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *IngestConfig) Validate() error {
	switch c.DuplicatePolicy {
	case DuplicatePolicyReject, DuplicatePolicyReplay:
	default:
		return fmt.Errorf("invalid INGEST_DUPLICATE_POLICY %q", c.DuplicatePolicy)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("INGEST_RETRY_MAX_ATTEMPTS must be >= 1, got %d", c.MaxAttempts)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Ingest.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Providers: ProvidersConfig{
			CepBaseURL:   "http://localhost:18081/ws",
			RatesBaseURL: "http://localhost:18082",
			Timeout:      2 * time.Second,
		},
		Ingest: IngestConfig{
			DuplicatePolicy:   DuplicatePolicyReject,
			MaxAttempts:       3,
			RetryBaseDelay:    time.Millisecond,
			EnrichmentTimeout: time.Second,
		},
	}
}
