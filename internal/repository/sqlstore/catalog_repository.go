package sqlstore

import (
	"context"
	"fmt"

	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	"go.uber.org/zap"
)

type catalogRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCatalogRepository creates the SQL-backed catalog repository
func NewCatalogRepository(db *DB, logger *zap.Logger) repository.CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *domain.ServiceCategory) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_servicecategory (title, description, created_at)
		 VALUES (?, ?, ?) RETURNING id`,
		category.Title, category.Description, category.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert category %s: %w", category.Title, err)
	}
	return id, nil
}

func (r *catalogRepository) CreateUnit(ctx context.Context, unit *domain.Unit) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_unit (name, code, created_at) VALUES (?, ?, ?) RETURNING id`,
		unit.Name, unit.Code, unit.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert unit %s: %w", unit.Name, err)
	}
	return id, nil
}

func (r *catalogRepository) CreateService(ctx context.Context, service *domain.Service) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_service
			(title, description, is_trade_required, price, unit_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		service.Title, service.Description, service.IsTradeRequired,
		service.Price, service.UnitID, service.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert service %s: %w", service.Title, err)
	}
	return id, nil
}

func (r *catalogRepository) CreateServiceType(ctx context.Context, st *domain.ServiceType) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_servicetype (service_id, title, description, price, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		st.ServiceID, st.Title, st.Description, st.Price, st.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert service type %s: %w", st.Title, err)
	}
	return id, nil
}

func (r *catalogRepository) CreateServicePhoto(ctx context.Context, photo *domain.ServicePhoto) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_servicephoto (service_id, photo, caption, uploaded_at)
		 VALUES (?, ?, ?, ?) RETURNING id`,
		photo.ServiceID, photo.Photo, photo.Caption, photo.UploadedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert service photo %s: %w", photo.Photo, err)
	}
	return id, nil
}

func (r *catalogRepository) CreateServiceTypePhoto(ctx context.Context, photo *domain.ServiceTypePhoto) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_servicetypephoto (service_type_id, photo, caption, uploaded_at)
		 VALUES (?, ?, ?, ?) RETURNING id`,
		photo.ServiceTypeID, photo.Photo, photo.Caption, photo.UploadedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert service type photo %s: %w", photo.Photo, err)
	}
	return id, nil
}

func (r *catalogRepository) LinkServiceCategory(ctx context.Context, serviceID, categoryID int64) error {
	query := r.db.Rebind(
		`INSERT INTO service_service_categories (service_id, servicecategory_id) VALUES (?, ?)`,
	)
	if _, err := r.db.ExecContext(ctx, query, serviceID, categoryID); err != nil {
		return fmt.Errorf("link service %d to category %d: %w", serviceID, categoryID, err)
	}
	return nil
}

func (r *catalogRepository) ServiceIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM service_service ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list service ids: %w", err)
	}
	return ids, nil
}

type ratingRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRatingRepository creates the SQL-backed rating repository
func NewRatingRepository(db *DB, logger *zap.Logger) repository.RatingRepository {
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ratingRepository) CreateRating(ctx context.Context, rating *domain.Rating) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO service_rating (service_id, user_id, rating, review, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		rating.ServiceID, rating.UserID, rating.Rating, rating.Review, rating.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert rating for service %d: %w", rating.ServiceID, err)
	}
	return id, nil
}
