package seed

import (
	"context"

	"github.com/marketplace-seeder/internal/domain"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"go.uber.org/zap"
)

// linkProfessionals assigns each professional 1-3 distinct services by
// modulo rotation over the captured service ids, in two passes. The
// first pass inserts each professional's primary service. The second
// pass adds up to two more consecutive services, guarded by an
// existence check so no duplicate (professional, service) pair is ever
// inserted.
func (s *Seeder) linkProfessionals(
	ctx context.Context,
	log *zap.Logger,
	report *domain.SeedReport,
	serviceIDs []int64,
) error {
	if len(serviceIDs) == 0 {
		return apperrors.ErrSeedDependency.WithDetails(map[string]interface{}{
			"step": "link_professionals",
		})
	}

	proIDs, err := s.professionals.ProfessionalIDs(ctx)
	if err != nil {
		return err
	}

	n := int64(len(serviceIDs))

	// Pass 1: primary service for every professional.
	for _, proID := range proIDs {
		primary := serviceIDs[(proID-1)%n]
		if err := s.professionals.LinkService(ctx, proID, primary); err != nil {
			return err
		}
		report.ServiceLinks++
	}

	// Pass 2: up to two additional consecutive services, rotating from
	// the primary slot. proID%3 extras keeps the 1-3 distribution.
	for _, proID := range proIDs {
		extras := proID % 3
		for k := int64(1); k <= extras; k++ {
			serviceID := serviceIDs[(proID-1+k)%n]

			exists, err := s.professionals.LinkExists(ctx, proID, serviceID)
			if err != nil {
				return err
			}
			if exists {
				report.SkippedDuplicate++
				continue
			}

			if err := s.professionals.LinkService(ctx, proID, serviceID); err != nil {
				return err
			}
			report.ServiceLinks++
		}
	}

	log.Info("professionals linked to services",
		zap.Int("links", report.ServiceLinks),
		zap.Int("skipped_duplicates", report.SkippedDuplicate),
	)
	return nil
}
