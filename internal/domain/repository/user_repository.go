package repository

import (
	"context"

	"github.com/marketplace-seeder/internal/domain"
)

// UserRepository persists users. The user table is owned by the
// marketplace application; the seeder only creates demo rows and the
// optional administrative account.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (int64, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// ProfessionalRepository persists professional records and their links
// to services.
type ProfessionalRepository interface {
	CreateProfessional(ctx context.Context, pro *domain.Professional) (int64, error)
	ProfessionalIDs(ctx context.Context) ([]int64, error)
	LinkService(ctx context.Context, professionalID, serviceID int64) error
	LinkExists(ctx context.Context, professionalID, serviceID int64) (bool, error)
}
