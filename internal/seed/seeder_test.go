package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/marketplace-seeder/internal/config"
	"github.com/marketplace-seeder/internal/domain"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"github.com/marketplace-seeder/internal/repository/sqlstore"
	"github.com/marketplace-seeder/internal/repository/sqlstore/testhelpers"
	"github.com/marketplace-seeder/internal/seed"
)

// SeederSuite runs the full seeding procedure against a real database
type SeederSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	ctx    context.Context
}

// SetupSuite runs once before all tests
func (s *SeederSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
}

// TearDownSuite runs once after all tests
func (s *SeederSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest gives every test a freshly migrated, empty schema
func (s *SeederSuite) SetupTest() {
	s.ctx = context.Background()
	s.testDB.Reset(s.T())
	s.testDB.Migrate(s.T())
}

func (s *SeederSuite) newSeeder(cfg *config.SeedConfig) *seed.Seeder {
	db := s.testDB.DB
	log := s.testDB.Logger
	return seed.New(
		cfg,
		sqlstore.NewGeographyRepository(db, log),
		sqlstore.NewAddressRepository(db, log),
		sqlstore.NewUserRepository(db, log),
		sqlstore.NewCatalogRepository(db, log),
		sqlstore.NewRatingRepository(db, log),
		sqlstore.NewProfessionalRepository(db, log),
		log,
	)
}

func (s *SeederSuite) defaultConfig() *config.SeedConfig {
	return &config.SeedConfig{
		DemoUserEmail: "demo@example.com",
		Promote:       "all",
		Verification:  "approved",
	}
}

func (s *SeederSuite) rowCount(query string, args ...interface{}) int {
	var n int
	err := s.testDB.DB.GetContext(s.ctx, &n, s.testDB.DB.Rebind(query), args...)
	s.Require().NoError(err)
	return n
}

func (s *SeederSuite) TestRun_FullLoad() {
	seeder := s.newSeeder(s.defaultConfig())

	report, err := seeder.Run(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(report)
	s.NotEmpty(report.RunID)
	s.False(report.FinishedAt.Before(report.StartedAt))

	// Geography: one country, every province, three cities per province.
	s.Equal(1, report.Countries)
	s.Equal(13, report.Provinces)
	s.Equal(39, report.Cities)
	s.Equal(1, s.rowCount("SELECT COUNT(*) FROM address_country"))
	s.Equal(13, s.rowCount("SELECT COUNT(*) FROM address_province"))
	s.Equal(39, s.rowCount("SELECT COUNT(*) FROM address_city"))

	// Every seeded city name is distinct.
	s.Equal(39, s.rowCount("SELECT COUNT(DISTINCT name) FROM address_city"))

	// Addresses: ten per highlighted city, all owned by the demo user.
	s.Equal(60, report.Addresses)
	s.Equal(60, s.rowCount("SELECT COUNT(*) FROM address_address"))
	s.Equal(60, s.rowCount(
		"SELECT COUNT(*) FROM address_address WHERE user_id = ?", report.DemoUserID,
	))

	// Users: demo customer plus the provider roster.
	s.Equal(9, report.Users)
	s.Equal(9, s.rowCount("SELECT COUNT(*) FROM user_customuser"))
	s.Equal(9, s.rowCount("SELECT COUNT(DISTINCT lower(email)) FROM user_customuser"))

	// Catalog.
	s.Equal(5, report.Categories)
	s.Equal(5, report.Units)
	s.Equal(5, report.Services)
	s.Equal(5, report.CategoryLinks)
	s.Equal(5, s.rowCount("SELECT COUNT(*) FROM service_service"))
	s.Equal(5, s.rowCount("SELECT COUNT(*) FROM service_service_categories"))
	s.Positive(report.ServiceTypes)
	s.Equal(report.ServiceTypes, s.rowCount("SELECT COUNT(*) FROM service_servicetype"))
	s.Equal(report.ServicePhotos, s.rowCount("SELECT COUNT(*) FROM service_servicephoto"))
	s.Equal(report.TypePhotos, s.rowCount("SELECT COUNT(*) FROM service_servicetypephoto"))

	// Ratings: one per service, all given by the demo user, all in range.
	s.Equal(5, report.Ratings)
	s.Equal(5, s.rowCount(
		"SELECT COUNT(*) FROM service_rating WHERE user_id = ?", report.DemoUserID,
	))
	s.Equal(0, s.rowCount(
		"SELECT COUNT(*) FROM service_rating WHERE rating < 1 OR rating > 5",
	))

	// Professionals: every user is promoted under the "all" variant.
	s.Equal(9, report.Professionals)
	s.Equal(9, s.rowCount("SELECT COUNT(*) FROM professional_professional"))
	s.Equal(9, s.rowCount(
		"SELECT COUNT(DISTINCT lower(license_number)) FROM professional_professional",
	))
	s.Equal(9, s.rowCount(
		"SELECT COUNT(*) FROM professional_professional WHERE is_verified = ? AND verification_status = ?",
		true, domain.VerificationApproved,
	))

	// Promotion flips the user flags.
	s.Equal(9, s.rowCount("SELECT COUNT(*) FROM user_customuser WHERE is_professional = ?", true))
	s.Equal(0, s.rowCount("SELECT COUNT(*) FROM user_customuser WHERE is_provider = ?", true))

	s.Equal(report.ServiceLinks, s.rowCount("SELECT COUNT(*) FROM professional_professionalservice"))
}

func (s *SeederSuite) TestRun_LinkDistribution() {
	seeder := s.newSeeder(s.defaultConfig())

	report, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	// No duplicate (professional, service) pair.
	var pairs int
	err = s.testDB.DB.GetContext(s.ctx, &pairs,
		"SELECT COUNT(*) FROM (SELECT professional_id, service_id FROM professional_professionalservice GROUP BY professional_id, service_id HAVING COUNT(*) > 1) d",
	)
	s.Require().NoError(err)
	s.Zero(pairs)

	// Every professional gets 1 to 3 distinct services.
	type linkRow struct {
		ProfessionalID int64 `db:"professional_id"`
		Services       int   `db:"services"`
	}
	var rows []linkRow
	err = s.testDB.DB.SelectContext(s.ctx, &rows,
		"SELECT professional_id, COUNT(DISTINCT service_id) AS services FROM professional_professionalservice GROUP BY professional_id",
	)
	s.Require().NoError(err)
	s.Len(rows, report.Professionals)

	total := 0
	for _, row := range rows {
		s.GreaterOrEqual(row.Services, 1, "professional %d has no services", row.ProfessionalID)
		s.LessOrEqual(row.Services, 3, "professional %d has too many services", row.ProfessionalID)
		total += row.Services
	}
	s.Equal(report.ServiceLinks, total)
}

func (s *SeederSuite) TestRun_PromoteEvenPending() {
	cfg := s.defaultConfig()
	cfg.Promote = "even"
	cfg.Verification = "pending"
	seeder := s.newSeeder(cfg)

	report, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	s.Equal(report.Professionals, s.rowCount("SELECT COUNT(*) FROM professional_professional"))
	s.Less(report.Professionals, report.Users)

	// Only users with an even id are promoted.
	s.Equal(0, s.rowCount(
		"SELECT COUNT(*) FROM professional_professional WHERE user_id % 2 != 0",
	))

	// Pending records are never marked verified.
	s.Equal(report.Professionals, s.rowCount(
		"SELECT COUNT(*) FROM professional_professional WHERE is_verified = ? AND verification_status = ?",
		false, domain.VerificationPending,
	))
}

func (s *SeederSuite) TestRun_CustomDemoEmail() {
	cfg := s.defaultConfig()
	cfg.DemoUserEmail = "QA.Lead@Example.COM"
	seeder := s.newSeeder(cfg)

	report, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	// Emails are normalized to lowercase on insert.
	var email string
	err = s.testDB.DB.GetContext(s.ctx, &email,
		s.testDB.DB.Rebind("SELECT email FROM user_customuser WHERE id = ?"), report.DemoUserID,
	)
	s.Require().NoError(err)
	s.Equal("qa.lead@example.com", email)
}

func (s *SeederSuite) TestRun_InvalidDataset() {
	seeder := s.newSeeder(s.defaultConfig()).WithDataset(&seed.Dataset{})

	report, err := seeder.Run(s.ctx)
	s.Require().Error(err)
	s.Nil(report)

	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal(apperrors.ErrInvalidDataset.Code, appErr.Code)

	// Nothing is written when validation fails.
	s.Equal(0, s.rowCount("SELECT COUNT(*) FROM user_customuser"))
	s.Equal(0, s.rowCount("SELECT COUNT(*) FROM address_city"))
}

func TestSeederSuite(t *testing.T) {
	suite.Run(t, new(SeederSuite))
}
