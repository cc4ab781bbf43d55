package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketplace-seeder/internal/config"
	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"github.com/marketplace-seeder/internal/pkg/validator"
	"go.uber.org/zap"
)

// Seeder runs the demo-data loading procedure: a sequential, fail-fast
// batch intended for a freshly migrated, empty schema. Steps run in
// strict dependency order and the first error aborts the run.
type Seeder struct {
	cfg           *config.SeedConfig
	geo           repository.GeographyRepository
	addresses     repository.AddressRepository
	users         repository.UserRepository
	catalog       repository.CatalogRepository
	ratings       repository.RatingRepository
	professionals repository.ProfessionalRepository
	logger        *zap.Logger

	data *Dataset
	now  func() time.Time
}

func New(
	cfg *config.SeedConfig,
	geo repository.GeographyRepository,
	addresses repository.AddressRepository,
	users repository.UserRepository,
	catalog repository.CatalogRepository,
	ratings repository.RatingRepository,
	professionals repository.ProfessionalRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		cfg:           cfg,
		geo:           geo,
		addresses:     addresses,
		users:         users,
		catalog:       catalog,
		ratings:       ratings,
		professionals: professionals,
		logger:        logger,
		data:          DefaultDataset(),
		now:           time.Now,
	}
}

// WithDataset replaces the default dataset. Used by tests.
func (s *Seeder) WithDataset(data *Dataset) *Seeder {
	s.data = data
	return s
}

// Run executes the full seeding procedure and reports rows inserted
// per entity. The dataset is validated before anything touches the
// database.
func (s *Seeder) Run(ctx context.Context) (*domain.SeedReport, error) {
	report := &domain.SeedReport{
		RunID:     uuid.NewString(),
		StartedAt: s.now().UTC(),
	}
	log := s.logger.With(zap.String("run_id", report.RunID))

	if err := validator.Validate(s.data); err != nil {
		return nil, apperrors.ErrInvalidDataset.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}

	log.Info("seeding started")

	demoUserID, err := s.loadUsers(ctx, log, report)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	report.DemoUserID = demoUserID

	cityIDs, err := s.loadGeography(ctx, log, report)
	if err != nil {
		return nil, fmt.Errorf("load geography: %w", err)
	}

	if err := s.loadAddresses(ctx, log, report, demoUserID, cityIDs); err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}

	serviceIDs, err := s.loadCatalog(ctx, log, report)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if err := s.loadRatings(ctx, log, report, demoUserID, serviceIDs); err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	if err := s.promoteProfessionals(ctx, log, report); err != nil {
		return nil, fmt.Errorf("promote professionals: %w", err)
	}

	if err := s.linkProfessionals(ctx, log, report, serviceIDs); err != nil {
		return nil, fmt.Errorf("link professionals: %w", err)
	}

	report.FinishedAt = s.now().UTC()
	log.Info("seeding finished",
		zap.Int("cities", report.Cities),
		zap.Int("addresses", report.Addresses),
		zap.Int("services", report.Services),
		zap.Int("professionals", report.Professionals),
		zap.Int("service_links", report.ServiceLinks),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)

	return report, nil
}
