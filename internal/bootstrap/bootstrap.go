package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/marketplace-seeder/internal/config"
	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"github.com/marketplace-seeder/internal/repository/sqlstore"
	"github.com/marketplace-seeder/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap drives the two provisioning paths: Ensure (apply pending
// migrations) and Reset (drop everything, migrate, seed, and provision
// the development admin). Both are fail-fast; the first failing step
// aborts the run.
type Bootstrap struct {
	cfg    *config.Config
	db     *sqlstore.DB
	seeder *seed.Seeder
	users  repository.UserRepository
	logger *zap.Logger
}

func New(
	cfg *config.Config,
	db *sqlstore.DB,
	seeder *seed.Seeder,
	users repository.UserRepository,
	logger *zap.Logger,
) *Bootstrap {
	return &Bootstrap{
		cfg:    cfg,
		db:     db,
		seeder: seeder,
		users:  users,
		logger: logger,
	}
}

// Ensure applies pending schema migrations and nothing else. This is
// the default, non-destructive path.
func (b *Bootstrap) Ensure(ctx context.Context) error {
	if err := b.db.Migrate(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMigrationFailed, err)
	}
	b.logger.Info("schema is up to date")
	return nil
}

// Reset is the destructive bootstrap path: it drops every owned table,
// re-applies migrations against the now-empty schema, runs the full
// seed, and provisions the administrative account when allowed. Running
// it twice leaves the database with identical row counts.
func (b *Bootstrap) Reset(ctx context.Context) (*domain.SeedReport, error) {
	b.logger.Warn("reset requested, dropping all owned tables")

	if err := b.db.DropAll(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err)
	}
	if err := b.db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMigrationFailed, err)
	}

	report, err := b.seeder.Run(ctx)
	if err != nil {
		return nil, err
	}

	seeded, err := b.provisionAdmin(ctx)
	if err != nil {
		return nil, err
	}
	report.AdminSeeded = seeded
	if seeded {
		report.Users++
	}

	b.logger.Info("reset completed",
		zap.String("run_id", report.RunID),
		zap.Bool("admin_seeded", seeded),
	)
	return report, nil
}

// provisionAdmin creates the fixed administrative account. It is gated
// behind an explicit development-only flag and always refused in
// production; when disabled it is skipped, not an error.
func (b *Bootstrap) provisionAdmin(ctx context.Context) (bool, error) {
	if !b.cfg.Admin.Enabled {
		b.logger.Info("admin bootstrap disabled, skipping")
		return false, nil
	}
	if !b.cfg.AdminAllowed() {
		return false, apperrors.ErrAdminDisabled.WithDetails(map[string]interface{}{
			"env": b.cfg.Server.Env,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(b.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		Email:       b.cfg.Admin.Email,
		Password:    string(hash),
		FirstName:   "Site",
		LastName:    "Admin",
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
		DateJoined:  time.Now().UTC(),
	}
	if _, err := b.users.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin user: %w", err)
	}

	b.logger.Info("admin account provisioned", zap.String("email", b.cfg.Admin.Email))
	return true, nil
}
