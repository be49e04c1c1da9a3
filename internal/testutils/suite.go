package testutils

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"pickup-sports-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// Tables emptied between tests. Join tables are listed next to their owners.
var pickupTables = []string{
	"rsvp_statuses",
	"game_teams",
	"games",
	"roles",
	"team_managers",
	"teams",
	"locations",
	"users",
}

// pgContainer is the one Postgres container shared by every suite of a test binary
type pgContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

var shared pgContainer

// BaseTestSuite gives a repository suite a migrated database
type BaseTestSuite struct {
	DB *gorm.DB
}

// SetupTestSuite starts the shared container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start test database: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db}
}

// CleanupSharedContainer closes the database and purges the container. TestMain calls it.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.WithError(err).Warn("Could not purge test database container")
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every table and resets the id sequences
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	s.DB.Exec("TRUNCATE TABLE " + strings.Join(pickupTables, ", ") + " RESTART IDENTITY CASCADE")
}

func (c *pgContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.pool, c.resource = pool, resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		c.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	logrus.WithField("port", port).Info("Test database ready")
	return nil
}
