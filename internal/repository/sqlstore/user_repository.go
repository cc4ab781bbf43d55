package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewUserRepository creates the SQL-backed user repository
func NewUserRepository(db *DB, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	// The upstream schema lowercases emails on save.
	email := strings.ToLower(user.Email)

	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO user_customuser
			(email, password, first_name, last_name, phone_number,
			 is_provider, is_professional, is_verified, is_active,
			 is_staff, is_superuser, date_joined)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		email, user.Password, user.FirstName, user.LastName, user.PhoneNumber,
		user.IsProvider, user.IsProfessional, user.IsVerified, user.IsActive,
		user.IsStaff, user.IsSuperuser, user.DateJoined,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user %s: %w", email, err)
	}
	return id, nil
}

func (r *userRepository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := r.db.Rebind(
		`SELECT id, email, password, first_name, last_name, phone_number,
		        is_provider, is_professional, is_verified, is_active,
		        is_staff, is_superuser, date_joined
		 FROM user_customuser WHERE email = ?`,
	)
	if err := r.db.GetContext(ctx, &user, query, strings.ToLower(email)); err != nil {
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM user_customuser ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

type professionalRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewProfessionalRepository creates the SQL-backed professional repository
func NewProfessionalRepository(db *DB, logger *zap.Logger) repository.ProfessionalRepository {
	return &professionalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *professionalRepository) CreateProfessional(ctx context.Context, pro *domain.Professional) (int64, error) {
	id, err := r.db.insertReturningID(ctx,
		`INSERT INTO professional_professional
			(user_id, license_number, government_issued_id, is_verified, verification_status)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		pro.UserID, pro.LicenseNumber, pro.GovernmentIssuedID,
		pro.IsVerified, pro.VerificationStatus,
	)
	if err != nil {
		return 0, fmt.Errorf("insert professional for user %d: %w", pro.UserID, err)
	}

	// Mirror the upstream save hook: a user with a professional profile
	// is flagged is_professional and loses is_provider.
	update := r.db.Rebind(
		`UPDATE user_customuser SET is_professional = TRUE, is_provider = FALSE WHERE id = ?`,
	)
	if _, err := r.db.ExecContext(ctx, update, pro.UserID); err != nil {
		return 0, fmt.Errorf("flag user %d professional: %w", pro.UserID, err)
	}

	return id, nil
}

func (r *professionalRepository) ProfessionalIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM professional_professional ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list professional ids: %w", err)
	}
	return ids, nil
}

func (r *professionalRepository) LinkService(ctx context.Context, professionalID, serviceID int64) error {
	query := r.db.Rebind(
		`INSERT INTO professional_professionalservice (service_id, professional_id) VALUES (?, ?)`,
	)
	if _, err := r.db.ExecContext(ctx, query, serviceID, professionalID); err != nil {
		return fmt.Errorf("link professional %d to service %d: %w", professionalID, serviceID, err)
	}
	return nil
}

func (r *professionalRepository) LinkExists(ctx context.Context, professionalID, serviceID int64) (bool, error) {
	var count int
	query := r.db.Rebind(
		`SELECT COUNT(*) FROM professional_professionalservice
		 WHERE professional_id = ? AND service_id = ?`,
	)
	if err := r.db.GetContext(ctx, &count, query, professionalID, serviceID); err != nil {
		return false, fmt.Errorf("check link professional %d service %d: %w", professionalID, serviceID, err)
	}
	return count > 0, nil
}
