package repository

import (
	"context"

	"github.com/marketplace-seeder/internal/domain"
)

// StatsRepository aggregates row counts and integrity queries over the
// seeded tables.
type StatsRepository interface {
	TableCounts(ctx context.Context) (domain.TableCounts, error)

	// OrphanAddressCount is the number of addresses whose city_id does
	// not resolve to a city row.
	OrphanAddressCount(ctx context.Context) (int, error)

	// DuplicateLicenseCount is the number of license numbers held by
	// more than one professional, compared case-insensitively.
	DuplicateLicenseCount(ctx context.Context) (int, error)

	// DuplicateServiceLinkCount is the number of (service, professional)
	// pairs appearing more than once in the join table.
	DuplicateServiceLinkCount(ctx context.Context) (int, error)

	// OutOfRangeRatingCount is the number of ratings outside 1..5.
	OutOfRangeRatingCount(ctx context.Context) (int, error)
}
