package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so a developer's .env is
// not picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "privacy.db", cfg.DatabaseFile)
	require.Equal(t, 15*time.Minute, cfg.JWKSRefreshInterval)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 10, cfg.MaxActiveHandles)
	require.Empty(t, cfg.Audiences())
}

func TestLoadConfigFromEnv(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PORT", "9090")
	t.Setenv("PRIVACY_DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://privacy@db/privacy")
	t.Setenv("AUTH_AUDIENCE", "privacy, rally-api ,")
	t.Setenv("JWKS_REFRESH_INTERVAL", "90s")
	t.Setenv("PRIVACY_MAX_ACTIVE_HANDLES", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, "postgres://privacy@db/privacy", cfg.DatabaseURL)
	require.Equal(t, []string{"privacy", "rally-api"}, cfg.Audiences())
	require.Equal(t, 90*time.Second, cfg.JWKSRefreshInterval)
	require.Equal(t, 3, cfg.MaxActiveHandles)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("LOG_LEVEL=debug\nPRIVACY_DATABASE_FILE=/data/privacy.db\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/data/privacy.db", cfg.DatabaseFile)
	require.Equal(t, "warn", cfg.LogLevel, "environment wins over .env")
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:             8081,
		DatabaseDriver:   DriverSQLite,
		DatabaseFile:     "privacy.db",
		AuthJWKSURL:      "http://auth/.well-known/jwks.json",
		MaxActiveHandles: 10,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres }},
		{"sqlite without file", func(c *Config) { c.DatabaseFile = "" }},
		{"no jwks url", func(c *Config) { c.AuthJWKSURL = "" }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"zero handle cap", func(c *Config) { c.MaxActiveHandles = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
