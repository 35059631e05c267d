package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Driver string `envconfig:"DB_DRIVER" default:"postgres"`
	DSN    string `envconfig:"DB_DSN"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	MaxRetries      int           `envconfig:"DB_MAX_RETRIES" default:"5"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// ResolvedDSN returns DB_DSN or, for Postgres, a DSN built from the parts.
func (d DBConfig) ResolvedDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == DriverSQLite {
		return "file:facepay.db?_foreign_keys=on"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

func (d DBConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" && (d.User == "" || d.Name == "") {
			return errors.New("DB_DSN or DB_USER and DB_NAME are required for postgres")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
	return nil
}

type RedisConfig struct {
	Addr       string `envconfig:"REDIS_ADDR"`
	MaxRetries int    `envconfig:"REDIS_MAX_RETRIES" default:"5"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Broker        string        `envconfig:"KAFKA_BROKER"`
	ConsumerGroup string        `envconfig:"KAFKA_CONSUMER_GROUP" default:"facepay-audit-log"`
	PollInterval  time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`
	MaxRetries    int           `envconfig:"KAFKA_MAX_RETRIES" default:"5"`
	// MetricsAddr is where the outbox worker serves /metrics. Empty disables it.
	MetricsAddr string `envconfig:"WORKER_METRICS_ADDR" default:":9102"`
}

// Validate reports a missing broker for the binaries that need one.
func (k KafkaConfig) Validate() error {
	if k.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

type AuthConfig struct {
	Domain      string        `envconfig:"AUTH0_DOMAIN"`
	Audience    string        `envconfig:"AUTH0_AUDIENCE"`
	Issuer      string        `envconfig:"AUTH0_ISSUER"`
	JWKSTimeout time.Duration `envconfig:"AUTH_JWKS_TIMEOUT" default:"5s"`
	// Required puts every CRUD route behind RequireIdentity.
	Required bool `envconfig:"AUTH_REQUIRED" default:"false"`
}

// ResolvedIssuer defaults the expected issuer to https://<domain>/.
func (a AuthConfig) ResolvedIssuer() string {
	if a.Issuer != "" {
		return a.Issuer
	}
	return "https://" + strings.TrimSuffix(a.Domain, "/") + "/"
}

// Validate reports missing identity provider settings.
func (a AuthConfig) Validate() error {
	var missing []string
	if a.Domain == "" {
		missing = append(missing, "AUTH0_DOMAIN")
	}
	if a.Audience == "" {
		missing = append(missing, "AUTH0_AUDIENCE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
