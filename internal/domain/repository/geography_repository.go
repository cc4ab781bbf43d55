package repository

import (
	"context"

	"github.com/marketplace-seeder/internal/domain"
)

// GeographyRepository persists the country → province → city hierarchy.
// Creates return the new row id so callers wire later inserts by
// captured identifier instead of repeated name lookups.
type GeographyRepository interface {
	CreateCountry(ctx context.Context, country *domain.Country) (int64, error)
	CreateProvince(ctx context.Context, province *domain.Province) (int64, error)
	CreateCity(ctx context.Context, city *domain.City) (int64, error)
	CityByID(ctx context.Context, id int64) (*domain.City, error)
}

// AddressRepository persists demo addresses.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *domain.Address) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
