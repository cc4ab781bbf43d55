package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/marketplace-seeder/internal/repository/sqlstore"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlstore.DB
	Logger *zap.Logger
}

// SetupTestDB initializes a test database connection.
//
// By default the suite runs against an in-memory SQLite database so it
// needs no infrastructure. Set TEST_DB_DRIVER=postgres (plus the
// TEST_DB_* variables below) to run the same suite against a real
// PostgreSQL instance.
func SetupTestDB(t *testing.T) *TestDB {
	logger := zap.NewNop()

	driver := getEnv("TEST_DB_DRIVER", "sqlite")

	switch driver {
	case "sqlite":
		db, err := sqlx.Connect("sqlite", ":memory:")
		if err != nil {
			t.Fatalf("Failed to open in-memory sqlite database: %v", err)
		}
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
			t.Fatalf("Failed to enable foreign keys: %v", err)
		}

		return &TestDB{
			DB:     sqlstore.NewDBForTest(db, "sqlite", logger),
			Logger: logger,
		}

	case "postgres":
		host := getEnv("TEST_DB_HOST", "localhost")
		port := getEnv("TEST_DB_PORT", "5433")
		user := getEnv("TEST_DB_USER", "postgres")
		password := getEnv("TEST_DB_PASSWORD", "postgres")
		dbname := getEnv("TEST_DB_NAME", "marketplace_test")
		sslmode := getEnv("TEST_DB_SSLMODE", "disable")

		connStr := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode,
		)

		// Retry connection with backoff to wait for the database to come up.
		var db *sqlx.DB
		var err error
		maxRetries := 10
		retryDelay := 500 * time.Millisecond

		for i := 0; i < maxRetries; i++ {
			db, err = sqlx.Connect("postgres", connStr)
			if err == nil {
				break
			}

			if i < maxRetries-1 {
				t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
				time.Sleep(retryDelay)
				retryDelay *= 2
			}
		}

		if err != nil {
			t.Fatalf("Failed to connect to test database after %d attempts: %v", maxRetries, err)
		}

		return &TestDB{
			DB:     sqlstore.NewDBForTest(db, "postgres", logger),
			Logger: logger,
		}

	default:
		t.Fatalf("Unknown TEST_DB_DRIVER %q", driver)
		return nil
	}
}

// Migrate applies the full schema to the test database.
func (tdb *TestDB) Migrate(t *testing.T) {
	if err := tdb.DB.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}
}

// Reset drops every owned table so a suite can start from a clean slate.
func (tdb *TestDB) Reset(t *testing.T) {
	if err := tdb.DB.DropAll(context.Background()); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
