package seed

import (
	"context"
	"fmt"

	"github.com/marketplace-seeder/internal/domain"
	"go.uber.org/zap"
)

// promoteProfessionals inserts a professional record for every existing
// user, or only users with an even id under the "even" variant. License
// numbers derive from the user id so they are unique by construction;
// the government-ID type is fixed. The verification variant decides
// between forced-approved and pending records, keeping the schema's
// verified/status consistency constraint satisfied.
func (s *Seeder) promoteProfessionals(ctx context.Context, log *zap.Logger, report *domain.SeedReport) error {
	userIDs, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	approved := s.cfg.Verification == "approved"

	for _, userID := range userIDs {
		if s.cfg.Promote == "even" && userID%2 != 0 {
			continue
		}

		status := domain.VerificationPending
		if approved {
			status = domain.VerificationApproved
		}

		pro := &domain.Professional{
			UserID:             userID,
			LicenseNumber:      licenseNumber(userID),
			GovernmentIssuedID: domain.IssuedIDDriverLicense,
			IsVerified:         approved,
			VerificationStatus: status,
		}
		if _, err := s.professionals.CreateProfessional(ctx, pro); err != nil {
			return err
		}
		report.Professionals++
	}

	log.Info("professionals promoted",
		zap.Int("professionals", report.Professionals),
		zap.String("variant", s.cfg.Promote),
		zap.String("verification", s.cfg.Verification),
	)
	return nil
}

func licenseNumber(userID int64) string {
	return fmt.Sprintf("LIC-%08d", userID)
}
