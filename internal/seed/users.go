package seed

import (
	"context"
	"strings"
	"time"

	"github.com/marketplace-seeder/internal/domain"
	"go.uber.org/zap"
)

// unusablePassword marks an account that cannot log in, matching the
// upstream convention for rows created without a real credential.
const unusablePassword = "!"

// loadUsers creates the fixed demo customer plus the provider roster
// professionals are later promoted from. Returns the demo user id that
// owns all demo addresses and ratings.
func (s *Seeder) loadUsers(ctx context.Context, log *zap.Logger, report *domain.SeedReport) (int64, error) {
	joined := s.now().UTC()

	demo := &domain.User{
		Email:      s.cfg.DemoUserEmail,
		Password:   unusablePassword,
		FirstName:  "Demo",
		LastName:   "Customer",
		IsActive:   true,
		DateJoined: joined,
	}
	demoUserID, err := s.users.CreateUser(ctx, demo)
	if err != nil {
		return 0, err
	}
	report.Users++

	for i, u := range s.data.ProviderUsers {
		phone := providerPhone(i)
		user := &domain.User{
			Email:       u.Email,
			Password:    unusablePassword,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			PhoneNumber: &phone,
			IsProvider:  true,
			IsActive:    true,
			DateJoined:  joined.Add(time.Duration(i+1) * time.Second),
		}
		if _, err := s.users.CreateUser(ctx, user); err != nil {
			return 0, err
		}
		report.Users++
	}

	log.Info("users loaded",
		zap.Int("users", report.Users),
		zap.String("demo_user", strings.ToLower(s.cfg.DemoUserEmail)),
	)
	return demoUserID, nil
}

func providerPhone(i int) string {
	// +1416555xxxx, deterministic per provider index.
	digits := []byte("+14165550000")
	digits[len(digits)-2] = byte('0' + (i/10)%10)
	digits[len(digits)-1] = byte('0' + i%10)
	return string(digits)
}
