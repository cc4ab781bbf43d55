package sqlstore

import (
	"context"
	"fmt"

	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository creates the SQL-backed stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// TableCounts returns the current row count of every seeded table.
func (r *statsRepository) TableCounts(ctx context.Context) (domain.TableCounts, error) {
	counts := make(domain.TableCounts, len(seededTables))

	for _, table := range seededTables {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			r.logger.Error("failed to count table", zap.String("table", table), zap.Error(err))
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}

func (r *statsRepository) OrphanAddressCount(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM address_address a
		LEFT JOIN address_city c ON c.id = a.city_id
		WHERE c.id IS NULL
	`
	return r.count(ctx, query, "orphan addresses")
}

func (r *statsRepository) DuplicateLicenseCount(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM (
			SELECT lower(license_number)
			FROM professional_professional
			GROUP BY lower(license_number)
			HAVING COUNT(*) > 1
		) dup
	`
	return r.count(ctx, query, "duplicate licenses")
}

func (r *statsRepository) DuplicateServiceLinkCount(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM (
			SELECT service_id, professional_id
			FROM professional_professionalservice
			GROUP BY service_id, professional_id
			HAVING COUNT(*) > 1
		) dup
	`
	return r.count(ctx, query, "duplicate service links")
}

func (r *statsRepository) OutOfRangeRatingCount(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM service_rating WHERE rating < 1 OR rating > 5`
	return r.count(ctx, query, "out-of-range ratings")
}

func (r *statsRepository) count(ctx context.Context, query, what string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		r.logger.Error("failed to run integrity query", zap.String("what", what), zap.Error(err))
		return 0, fmt.Errorf("query %s: %w", what, err)
	}
	return count, nil
}
