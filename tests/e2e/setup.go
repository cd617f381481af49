//go:build e2e

// Package e2e spins up a real PostgreSQL container and wires the
// lifecycle engine against the actual repositories, so the conditional
// updates and transactional settlement run against real SQL.
package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"lendhub/internal/infra"
	"lendhub/internal/infra/readstore"
	"lendhub/internal/infra/repository"
	"lendhub/internal/infra/uow"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Engine bundles everything a lifecycle scenario needs.
type Engine struct {
	Pool     *pgxpool.Pool
	Clock    *clock.MockClock
	Requests commands.RequestCommands
	Items    commands.ItemCommands
	Queries  queries.RequestQueries
}

func SetupEngine(t *testing.T) *Engine {
	t.Helper()

	info := startPostgres(t)
	pool := prepareDatabase(t, info)

	var db infra.DBTX = pool
	reads := readstore.NewCommandReads(db)
	requestReads := readstore.NewRequestReadStore(db)
	itemReads := readstore.NewItemReadStore(db)

	requestQueries := queries.NewRequestQueries(requestReads)
	itemQueries := queries.NewItemQueries(itemReads)

	mc := clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	unit := uow.NewPostgresUoW(pool)

	return &Engine{
		Pool:  pool,
		Clock: mc,
		Requests: commands.NewRequestCommands(
			repository.NewRequestRepository(),
			repository.NewItemRepository(),
			repository.NewUserRepository(),
			reads, requestQueries, unit, mc,
		),
		Items: commands.NewItemCommands(
			repository.NewItemRepository(),
			repository.NewRequestRepository(),
			reads, itemQueries, unit, mc,
		),
		Queries: requestQueries,
	}
}

func startPostgres(t *testing.T) ContainerInfo {
	t.Helper()

	postgresContainerOnce.Do(func() {
		ctx := context.Background()
		req := testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
		}

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
		postgresTestContainer = container
	})

	ctx := context.Background()
	host, err := postgresTestContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresTestContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return ContainerInfo{Host: host, Port: port}
}

// prepareDatabase creates a fresh database per test and applies the
// schema, so parallel packages never see each other's rows.
func prepareDatabase(t *testing.T, info ContainerInfo) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port(), dbName)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile(migrationPath(t))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")

	return pool
}

func migrationPath(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations", "001_init.sql")
}
