//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"

	"vending-server/cmd/bootstrap"
	"vending-server/cmd/bootstrap/components"
	"vending-server/internal/infra/db"
	"vending-server/internal/pkg/config"
	"vending-server/tests/common/dbtest"
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

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, config.Config) {
	postgresInfo := startContainers(t)
	pool, dbConfig := prepareDatabase(t, postgresInfo)

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return pool, createTestConfig(t, dbConfig)
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to resolve the postgres container address")

	return postgresInfo
}

// ------------------------------------------------------------
// Database preparation
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// one database per test process
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
			slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create the test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop the test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 8,
	}

	pool, cleanup, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)

	require.NoError(t, db.Migrate(ctx, pool), "migration failed")

	return pool, dbConfig
}

// itemDBPath finds the bundled item database from the package directory
// go test runs in.
func itemDBPath(t *testing.T) string {
	t.Helper()
	const file = "db/item_db.yml"
	for _, cand := range []string{
		file,
		filepath.Join("..", file),
		filepath.Join("..", "..", file),
		filepath.Join("..", "..", "..", file),
	} {
		if _, err := os.Stat(cand); err == nil {
			return cand
		}
	}
	t.Fatalf("item database %s not found", file)
	return ""
}

func createTestConfig(t *testing.T, dbConfig config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Vending.ItemDBPath = itemDBPath(t)
	return cfg
}

// ------------------------------------------------------------
// Application wiring
// ------------------------------------------------------------

// buildE2EApp starts the full module graph on an existing pool. The pool is
// not closed when the app stops, so a test can stop and start the server
// against the same database.
func buildE2EApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		bootstrap.WorldModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start the fx app")
	require.NotNil(t, router)

	return router, app
}

func stopApp(app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		slog.Warn("failed to stop the fx app", "error", err.Error())
	}
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-vending-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start the postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate the postgres container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config

	app *fx.App
}

func (s *SharedSuite) SetupSuite() {
	s.DB, s.Config = setupE2EEnvironment(s.T())
}

// SetupTest gives every test an empty database and a freshly booted server.
func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	s.Router, s.app = buildE2EApp(s.T(), s.DB, s.Config)
}

func (s *SharedSuite) TearDownTest() {
	if s.app != nil {
		stopApp(s.app)
		s.app = nil
	}
}

// Restart stops the server the way a shutdown does and boots a new one on
// the same database.
func (s *SharedSuite) Restart() {
	s.TearDownTest()
	s.Router, s.app = buildE2EApp(s.T(), s.DB, s.Config)
}
