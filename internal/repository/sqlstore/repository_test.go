package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	"github.com/marketplace-seeder/internal/repository/sqlstore"
	"github.com/marketplace-seeder/internal/repository/sqlstore/testhelpers"
)

// RepositorySuite tests the SQL repositories against a real database
type RepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	ctx    context.Context

	geo           repository.GeographyRepository
	addresses     repository.AddressRepository
	users         repository.UserRepository
	catalog       repository.CatalogRepository
	professionals repository.ProfessionalRepository
	stats         repository.StatsRepository
}

func (s *RepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	db := s.testDB.DB
	log := s.testDB.Logger
	s.geo = sqlstore.NewGeographyRepository(db, log)
	s.addresses = sqlstore.NewAddressRepository(db, log)
	s.users = sqlstore.NewUserRepository(db, log)
	s.catalog = sqlstore.NewCatalogRepository(db, log)
	s.professionals = sqlstore.NewProfessionalRepository(db, log)
	s.stats = sqlstore.NewStatsRepository(db, log)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.testDB.Reset(s.T())
	s.testDB.Migrate(s.T())
}

func (s *RepositorySuite) createUser(email string) int64 {
	id, err := s.users.CreateUser(s.ctx, &domain.User{
		Email:      email,
		Password:   "!",
		FirstName:  "Test",
		LastName:   "User",
		IsActive:   true,
		DateJoined: time.Now().UTC(),
	})
	s.Require().NoError(err)
	return id
}

func (s *RepositorySuite) createCity(name string) int64 {
	countryID, err := s.geo.CreateCountry(s.ctx, &domain.Country{Name: "Canada", Code: "CA"})
	s.Require().NoError(err)

	provinceID, err := s.geo.CreateProvince(s.ctx, &domain.Province{
		Name: "Ontario", Code: "ON", CountryID: countryID,
	})
	s.Require().NoError(err)

	cityID, err := s.geo.CreateCity(s.ctx, &domain.City{Name: name, ProvinceID: provinceID})
	s.Require().NoError(err)
	return cityID
}

func (s *RepositorySuite) TestGeography_CreateHierarchy() {
	cityID := s.createCity("Toronto")

	city, err := s.geo.CityByID(s.ctx, cityID)
	s.Require().NoError(err)
	s.Equal("Toronto", city.Name)
	s.Positive(city.ProvinceID)
}

func (s *RepositorySuite) TestGeography_CityByID_NotFound() {
	_, err := s.geo.CityByID(s.ctx, 9999)
	s.Error(err)
}

func (s *RepositorySuite) TestGeography_DuplicateCountryCode() {
	_, err := s.geo.CreateCountry(s.ctx, &domain.Country{Name: "Canada", Code: "CA"})
	s.Require().NoError(err)

	_, err = s.geo.CreateCountry(s.ctx, &domain.Country{Name: "Canada Again", Code: "CA"})
	s.Error(err, "country codes are unique")
}

func (s *RepositorySuite) TestAddress_CreateAndCount() {
	userID := s.createUser("owner@example.com")
	cityID := s.createCity("Toronto")

	now := time.Now().UTC()
	lat, lng := 43.6426, -79.3871
	id, err := s.addresses.CreateAddress(s.ctx, &domain.Address{
		UserID:       userID,
		StreetNumber: "100",
		StreetName:   "King Street West",
		CityID:       cityID,
		PostalCode:   "M5V 2T6",
		Latitude:     &lat,
		Longitude:    &lng,
		DateCreated:  now,
		DateUpdated:  now,
	})
	s.Require().NoError(err)
	s.Positive(id)

	count, err := s.addresses.CountByUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(1, count)

	count, err = s.addresses.CountByUser(s.ctx, userID+1)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RepositorySuite) TestAddress_RejectsOutOfRangeLatitude() {
	userID := s.createUser("owner@example.com")
	cityID := s.createCity("Toronto")

	now := time.Now().UTC()
	lat := 91.0
	_, err := s.addresses.CreateAddress(s.ctx, &domain.Address{
		UserID:       userID,
		StreetNumber: "100",
		StreetName:   "King Street West",
		CityID:       cityID,
		PostalCode:   "M5V 2T6",
		Latitude:     &lat,
		DateCreated:  now,
		DateUpdated:  now,
	})
	s.Error(err)
}

func (s *RepositorySuite) TestUser_EmailLowercasedAndUnique() {
	id := s.createUser("Mixed.Case@Example.COM")

	user, err := s.users.UserByEmail(s.ctx, "mixed.case@example.com")
	s.Require().NoError(err)
	s.Equal(id, user.ID)
	s.Equal("mixed.case@example.com", user.Email)

	_, err = s.users.CreateUser(s.ctx, &domain.User{
		Email:      "MIXED.CASE@example.com",
		Password:   "!",
		FirstName:  "Dup",
		LastName:   "User",
		DateJoined: time.Now().UTC(),
	})
	s.Error(err, "emails are normalized and unique")
}

func (s *RepositorySuite) TestUser_ListUserIDs() {
	first := s.createUser("a@example.com")
	second := s.createUser("b@example.com")

	ids, err := s.users.ListUserIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int64{first, second}, ids)
}

func (s *RepositorySuite) TestCatalog_ServiceIDsInInsertionOrder() {
	var want []int64
	for _, title := range []string{"Deep Clean", "Drain Repair", "Panel Upgrade"} {
		id, err := s.catalog.CreateService(s.ctx, &domain.Service{
			Title: title,
			Price: "100.00",
		})
		s.Require().NoError(err)
		want = append(want, id)
	}

	ids, err := s.catalog.ServiceIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal(want, ids)
}

func (s *RepositorySuite) TestProfessional_CreateFlipsUserFlags() {
	userID := s.createUser("pro@example.com")

	_, err := s.professionals.CreateProfessional(s.ctx, &domain.Professional{
		UserID:             userID,
		LicenseNumber:      "LIC-00000001",
		GovernmentIssuedID: domain.IssuedIDDriverLicense,
		IsVerified:         true,
		VerificationStatus: domain.VerificationApproved,
	})
	s.Require().NoError(err)

	user, err := s.users.UserByEmail(s.ctx, "pro@example.com")
	s.Require().NoError(err)
	s.True(user.IsProfessional)
	s.False(user.IsProvider)
}

func (s *RepositorySuite) TestProfessional_RejectsInconsistentVerification() {
	userID := s.createUser("pro@example.com")

	// Approved status requires the verified flag; the schema enforces it.
	_, err := s.professionals.CreateProfessional(s.ctx, &domain.Professional{
		UserID:             userID,
		LicenseNumber:      "LIC-00000001",
		GovernmentIssuedID: domain.IssuedIDDriverLicense,
		IsVerified:         false,
		VerificationStatus: domain.VerificationApproved,
	})
	s.Error(err)
}

func (s *RepositorySuite) TestProfessional_LinkExists() {
	userID := s.createUser("pro@example.com")
	proID, err := s.professionals.CreateProfessional(s.ctx, &domain.Professional{
		UserID:             userID,
		LicenseNumber:      "LIC-00000001",
		GovernmentIssuedID: domain.IssuedIDDriverLicense,
		IsVerified:         true,
		VerificationStatus: domain.VerificationApproved,
	})
	s.Require().NoError(err)

	serviceID, err := s.catalog.CreateService(s.ctx, &domain.Service{
		Title: "Deep Clean",
		Price: "100.00",
	})
	s.Require().NoError(err)

	exists, err := s.professionals.LinkExists(s.ctx, proID, serviceID)
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.professionals.LinkService(s.ctx, proID, serviceID))

	exists, err = s.professionals.LinkExists(s.ctx, proID, serviceID)
	s.Require().NoError(err)
	s.True(exists)

	// The pair is unique at the schema level too.
	s.Error(s.professionals.LinkService(s.ctx, proID, serviceID))
}

func (s *RepositorySuite) TestStats_TableCounts() {
	s.createUser("a@example.com")
	s.createCity("Toronto")

	counts, err := s.stats.TableCounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, counts["user_customuser"])
	s.Equal(1, counts["address_country"])
	s.Equal(1, counts["address_province"])
	s.Equal(1, counts["address_city"])
	s.Equal(0, counts["address_address"])
}

func (s *RepositorySuite) TestStats_OrphanAndDuplicateCounts() {
	count, err := s.stats.OrphanAddressCount(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	count, err = s.stats.DuplicateLicenseCount(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	count, err = s.stats.DuplicateServiceLinkCount(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	count, err = s.stats.OutOfRangeRatingCount(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
