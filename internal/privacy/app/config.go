package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is loaded from the environment and an optional .env file. Env vars
// win over the file.
type Config struct {
	Port                int           `mapstructure:"PORT"`
	Env                 string        `mapstructure:"ENV"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	LogFormat           string        `mapstructure:"LOG_FORMAT"`
	ShutdownGracePeriod time.Duration `mapstructure:"SHUTDOWN_GRACE_PERIOD"`

	DatabaseDriver string `mapstructure:"PRIVACY_DATABASE_DRIVER"` // sqlite or postgres
	DatabaseFile   string `mapstructure:"PRIVACY_DATABASE_FILE"`   // sqlite only
	DatabaseURL    string `mapstructure:"DATABASE_URL"`            // postgres only

	// Tokens are issued by the auth service; only its public keys are needed.
	AuthIssuer          string        `mapstructure:"AUTH_ISSUER"`
	AuthAudience        string        `mapstructure:"AUTH_AUDIENCE"` // comma separated
	AuthJWKSURL         string        `mapstructure:"AUTH_JWKS_URL"`
	JWKSRefreshInterval time.Duration `mapstructure:"JWKS_REFRESH_INTERVAL"`

	MaxActiveHandles int `mapstructure:"PRIVACY_MAX_ACTIVE_HANDLES"`

	SentryDSN string `mapstructure:"SENTRY_DSN"` // empty disables reporting
}

// LoadConfig reads .env (if present) and the environment.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()

	v.SetDefault("PORT", 8081)
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)
	v.SetDefault("PRIVACY_DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("PRIVACY_DATABASE_FILE", "privacy.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("AUTH_ISSUER", "rally-auth")
	v.SetDefault("AUTH_AUDIENCE", "")
	v.SetDefault("AUTH_JWKS_URL", "http://localhost:8080/.well-known/jwks.json")
	v.SetDefault("JWKS_REFRESH_INTERVAL", 15*time.Minute)
	v.SetDefault("PRIVACY_MAX_ACTIVE_HANDLES", 10)
	v.SetDefault("SENTRY_DSN", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("config: PRIVACY_DATABASE_FILE must be set for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown PRIVACY_DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.AuthJWKSURL == "" {
		return errors.New("config: AUTH_JWKS_URL must be set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	}
	if c.MaxActiveHandles <= 0 {
		return errors.New("config: PRIVACY_MAX_ACTIVE_HANDLES must be positive")
	}
	return nil
}

// Audiences splits AuthAudience. An empty result disables audience checks.
func (c Config) Audiences() []string {
	var out []string
	for _, a := range strings.Split(c.AuthAudience, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
