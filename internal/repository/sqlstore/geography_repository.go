package sqlstore

import (
	"context"
	"fmt"

	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	"go.uber.org/zap"
)

type geographyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewGeographyRepository creates the SQL-backed geography repository
func NewGeographyRepository(db *DB, logger *zap.Logger) repository.GeographyRepository {
	return &geographyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *geographyRepository) CreateCountry(ctx context.Context, country *domain.Country) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO address_country (name, code) VALUES (?, ?) RETURNING id`,
		country.Name, country.Code,
	)
	if err != nil {
		return 0, fmt.Errorf("insert country %s: %w", country.Code, err)
	}
	return id, nil
}

func (r *geographyRepository) CreateProvince(ctx context.Context, province *domain.Province) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO address_province (name, code, country_id) VALUES (?, ?, ?) RETURNING id`,
		province.Name, province.Code, province.CountryID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert province %s: %w", province.Code, err)
	}
	return id, nil
}

func (r *geographyRepository) CreateCity(ctx context.Context, city *domain.City) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO address_city (name, province_id) VALUES (?, ?) RETURNING id`,
		city.Name, city.ProvinceID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert city %s: %w", city.Name, err)
	}
	return id, nil
}

func (r *geographyRepository) CityByID(ctx context.Context, id int64) (*domain.City, error) {
	var city domain.City
	query := r.db.Rebind(`SELECT id, name, province_id FROM address_city WHERE id = ?`)
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		return nil, fmt.Errorf("get city %d: %w", id, err)
	}
	return &city, nil
}

type addressRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewAddressRepository creates the SQL-backed address repository
func NewAddressRepository(db *DB, logger *zap.Logger) repository.AddressRepository {
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *domain.Address) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO address_address
			(user_id, street_number, street_name, unit_suite, city_id, postal_code,
			 latitude, longitude, date_created, date_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		address.UserID, address.StreetNumber, address.StreetName, address.UnitSuite,
		address.CityID, address.PostalCode, address.Latitude, address.Longitude,
		address.DateCreated, address.DateUpdated,
	)
	if err != nil {
		return 0, fmt.Errorf("insert address %s %s: %w", address.StreetNumber, address.StreetName, err)
	}
	return id, nil
}

func (r *addressRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM address_address WHERE user_id = ?`)
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count addresses for user %d: %w", userID, err)
	}
	return count, nil
}
