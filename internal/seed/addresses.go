package seed

import (
	"context"
	"fmt"

	"github.com/marketplace-seeder/internal/domain"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"github.com/marketplace-seeder/internal/pkg/validator"
	"go.uber.org/zap"
)

// addressInput carries the validated fields of one generated address.
// The tags mirror the upstream schema validators.
type addressInput struct {
	StreetNumber string `validate:"required,street_number"`
	StreetName   string `validate:"required"`
	PostalCode   string `validate:"required,ca_postal"`
}

// loadAddresses inserts AddressesPerCity demo addresses for each named
// city, all owned by the demo user. City references resolve through the
// id map captured by the geography step; a city name missing from the
// map means geography never ran, which is a hard dependency error.
func (s *Seeder) loadAddresses(
	ctx context.Context,
	log *zap.Logger,
	report *domain.SeedReport,
	demoUserID int64,
	cityIDs map[string]int64,
) error {
	created := s.now().UTC()

	for ci, def := range s.data.AddressCities {
		cityID, ok := cityIDs[def.City]
		if !ok {
			return apperrors.ErrSeedDependency.WithDetails(map[string]interface{}{
				"city": def.City,
			})
		}

		for i := 0; i < s.data.AddressesPerCity; i++ {
			input := addressInput{
				StreetNumber: fmt.Sprintf("%d", 100+i*12),
				StreetName:   streetNames[i%len(streetNames)],
				PostalCode:   postalCode(def.PostalPrefix, ci, i),
			}
			if err := validator.Validate(&input); err != nil {
				return apperrors.ErrInvalidDataset.WithDetails(map[string]interface{}{
					"city":  def.City,
					"index": i,
					"cause": err.Error(),
				})
			}

			lat := def.Latitude + float64(i)*0.0015
			lng := def.Longitude + float64(i)*0.0015

			address := &domain.Address{
				UserID:       demoUserID,
				StreetNumber: input.StreetNumber,
				StreetName:   input.StreetName,
				UnitSuite:    unitSuite(i),
				CityID:       cityID,
				PostalCode:   input.PostalCode,
				Latitude:     &lat,
				Longitude:    &lng,
				DateCreated:  created,
				DateUpdated:  created,
			}
			if _, err := s.addresses.CreateAddress(ctx, address); err != nil {
				return err
			}
			report.Addresses++
		}
	}

	log.Info("addresses loaded",
		zap.Int("addresses", report.Addresses),
		zap.Int64("demo_user_id", demoUserID),
	)
	return nil
}

// unitSuite gives every third address a suite number; the rest are
// whole-building addresses with no unit.
func unitSuite(i int) *string {
	if i%3 != 0 {
		return nil
	}
	suite := fmt.Sprintf("#%d", 101+i)
	return &suite
}

// postalCode builds a valid Canadian postal code from the city prefix
// and the address index, e.g. "M5V 2K7".
func postalCode(prefix string, cityIdx, i int) string {
	letter := postalLetters[(cityIdx*7+i)%len(postalLetters)]
	return fmt.Sprintf("%s %d%c%d", prefix, 1+i%9, letter, (cityIdx+i)%10)
}
