package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/internal/privacy/store/drivers/postgres"
	"github.com/aussiebroadwan/rally/internal/privacy/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "rally"
	pgPassword = "rally"
)

// startPostgres runs a throwaway postgres container and returns its base DSN
// without a database name.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in -short mode")
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
				"POSTGRES_DB":       "postgres",
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

	return fmt.Sprintf("postgres://%s:%s@%s:%s", pgUser, pgPassword, host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	base := startPostgres(t)

	admin, err := postgres.NewStore(t.Context(), base+"/postgres?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	n := 0
	storetest.Run(t, func(t *testing.T) store.Store {
		// One database per subtest keeps them independent.
		n++
		name := fmt.Sprintf("privacy_%d", n)
		_, err := admin.DB().ExecContext(t.Context(), "CREATE DATABASE "+name)
		require.NoError(t, err)

		s, err := postgres.NewStore(t.Context(), base+"/"+name+"?sslmode=disable")
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		require.NoError(t, s.ApplyMigrations())
		return s
	})
}
