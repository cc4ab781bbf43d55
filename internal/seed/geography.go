package seed

import (
	"context"

	"github.com/marketplace-seeder/internal/domain"
	"go.uber.org/zap"
)

// loadGeography inserts the country, its provinces, and three cities
// per province. City ids are captured at insertion time and returned
// keyed by city name; names are unique across the dataset, so the map
// is unambiguous for the address step.
func (s *Seeder) loadGeography(ctx context.Context, log *zap.Logger, report *domain.SeedReport) (map[string]int64, error) {
	countryID, err := s.geo.CreateCountry(ctx, &domain.Country{
		Name: s.data.Country.Name,
		Code: s.data.Country.Code,
	})
	if err != nil {
		return nil, err
	}
	report.Countries++

	cityIDs := make(map[string]int64, len(s.data.Country.Provinces)*3)

	for _, p := range s.data.Country.Provinces {
		provinceID, err := s.geo.CreateProvince(ctx, &domain.Province{
			Name:      p.Name,
			Code:      p.Code,
			CountryID: countryID,
		})
		if err != nil {
			return nil, err
		}
		report.Provinces++

		for _, cityName := range p.Cities {
			cityID, err := s.geo.CreateCity(ctx, &domain.City{
				Name:       cityName,
				ProvinceID: provinceID,
			})
			if err != nil {
				return nil, err
			}
			cityIDs[cityName] = cityID
			report.Cities++
		}
	}

	log.Info("geography loaded",
		zap.String("country", s.data.Country.Code),
		zap.Int("provinces", report.Provinces),
		zap.Int("cities", report.Cities),
	)
	return cityIDs, nil
}
