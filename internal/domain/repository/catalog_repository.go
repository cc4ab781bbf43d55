package repository

import (
	"context"

	"github.com/marketplace-seeder/internal/domain"
)

// CatalogRepository persists the service taxonomy: categories, units,
// services, service types, and demo photos.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *domain.ServiceCategory) (int64, error)
	CreateUnit(ctx context.Context, unit *domain.Unit) (int64, error)
	CreateService(ctx context.Context, service *domain.Service) (int64, error)
	CreateServiceType(ctx context.Context, st *domain.ServiceType) (int64, error)
	CreateServicePhoto(ctx context.Context, photo *domain.ServicePhoto) (int64, error)
	CreateServiceTypePhoto(ctx context.Context, photo *domain.ServiceTypePhoto) (int64, error)
	LinkServiceCategory(ctx context.Context, serviceID, categoryID int64) error
	ServiceIDs(ctx context.Context) ([]int64, error)
}

// RatingRepository persists service ratings.
type RatingRepository interface {
	CreateRating(ctx context.Context, rating *domain.Rating) (int64, error)
}
