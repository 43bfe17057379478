package privacy_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/rally/internal/privacy/app"
	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/internal/privacy/store/drivers/postgres"
	"github.com/aussiebroadwan/rally/pkg/jwtx/jwtxtest"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

/*
 * End-to-end tests run the whole privacy application in-process against a
 * Postgres container, with a fake auth service publishing the JWKS.
 */

const (
	pgUser     = "rally"
	pgPassword = "rally"
)

var selfScopes = []string{domain.PermPrivacyRead, domain.PermPrivacyWrite}

type env struct {
	baseURL string
	issuer  *jwtxtest.TokenIssuer
	store   store.Store // direct access for seeding profiles
}

func (e *env) client(t *testing.T, subject string, scopes ...string) *privacysdk.Client {
	return privacysdk.NewClient(e.baseURL, privacysdk.StaticToken(e.issuer.Token(t, subject, scopes...)))
}

// seedProfile stands in for the profile service creating a user's profile.
func (e *env) seedProfile(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, e.store.Profiles().CreateProfile(t.Context(), domain.ProfileIdentity{
		UserID:      userID,
		IsAnonymous: true,
		UpdatedAt:   time.Now().UTC(),
	}))
}

// setupPrivacyService starts Postgres, a JWKS endpoint and the application.
func setupPrivacyService(t *testing.T) *env {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "privacy",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/privacy?sslmode=disable", pgUser, pgPassword, host, port.Port())

	issuer := jwtxtest.New(t)
	jwksSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(issuer.JWKS)
	}))
	t.Cleanup(jwksSrv.Close)

	application, err := app.New(ctx, app.Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      app.DriverPostgres,
		DatabaseURL:         dsn,
		AuthIssuer:          jwtxtest.Issuer,
		AuthAudience:        jwtxtest.Audience,
		AuthJWKSURL:         jwksSrv.URL,
		JWKSRefreshInterval: time.Hour,
		MaxActiveHandles:    3,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	seeder, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = seeder.Close() })

	return &env{baseURL: srv.URL, issuer: issuer, store: seeder}
}
