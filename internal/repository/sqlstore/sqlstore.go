package sqlstore

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/marketplace-seeder/internal/config"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite"; sqlx only knows "sqlite3".
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type DB struct {
	*sqlx.DB
	driver string
	logger *zap.Logger
}

func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case "sqlite":
		db, err = sqlx.Connect("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		// Single connection for SQLite to avoid locking issues.
		db.SetMaxOpenConns(1)

		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA foreign_keys=ON",
			"PRAGMA busy_timeout=5000",
		}
		for _, p := range pragmas {
			if _, err := db.Exec(p); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("exec %q: %w", p, err)
			}
		}

	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		)

		db, err = sqlx.Connect("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		// Connection pool settings
		db.SetMaxOpenConns(cfg.MaxConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connected",
		zap.String("driver", cfg.Driver),
		zap.String("database", databaseName(cfg)),
	)

	return &DB{DB: db, driver: cfg.Driver, logger: logger}, nil
}

func databaseName(cfg *config.DatabaseConfig) string {
	if cfg.Driver == "sqlite" {
		return cfg.Path
	}
	return cfg.DBName
}

func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Driver reports which backend the connection was opened against.
func (db *DB) Driver() string {
	return db.driver
}

// insertReturningID runs an INSERT ... RETURNING id statement written
// with ? placeholders, rebinding for the active driver.
func (db *DB) insertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := db.QueryRowxContext(ctx, db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, driver string, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		driver: driver,
		logger: logger,
	}
}
