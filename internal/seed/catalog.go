package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marketplace-seeder/internal/domain"
	"go.uber.org/zap"
)

// loadCatalog inserts the service taxonomy: categories and units first,
// then services bound to their unit by captured id (service i bills in
// unit i and belongs to category i), then service types and one demo
// photo per service and per type. Returns service ids in insertion
// order for the rating and linking steps.
func (s *Seeder) loadCatalog(ctx context.Context, log *zap.Logger, report *domain.SeedReport) ([]int64, error) {
	created := s.now().UTC()

	categoryIDs := make([]int64, 0, len(s.data.Categories))
	for _, c := range s.data.Categories {
		desc := c.Description
		id, err := s.catalog.CreateCategory(ctx, &domain.ServiceCategory{
			Title:       c.Title,
			Description: &desc,
			CreatedAt:   created,
		})
		if err != nil {
			return nil, err
		}
		categoryIDs = append(categoryIDs, id)
		report.Categories++
	}

	unitIDs := make([]int64, 0, len(s.data.Units))
	for _, u := range s.data.Units {
		code := u.Code
		id, err := s.catalog.CreateUnit(ctx, &domain.Unit{
			Name:      u.Name,
			Code:      &code,
			CreatedAt: created,
		})
		if err != nil {
			return nil, err
		}
		unitIDs = append(unitIDs, id)
		report.Units++
	}

	serviceIDs := make([]int64, 0, len(s.data.Services))
	for i, svc := range s.data.Services {
		desc := svc.Description
		unitID := unitIDs[i]
		serviceID, err := s.catalog.CreateService(ctx, &domain.Service{
			Title:           svc.Title,
			Description:     &desc,
			IsTradeRequired: svc.TradeRequired,
			Price:           svc.Price,
			UnitID:          &unitID,
			CreatedAt:       created,
		})
		if err != nil {
			return nil, err
		}
		serviceIDs = append(serviceIDs, serviceID)
		report.Services++

		if err := s.catalog.LinkServiceCategory(ctx, serviceID, categoryIDs[i]); err != nil {
			return nil, err
		}
		report.CategoryLinks++

		caption := fmt.Sprintf("%s demo photo", svc.Title)
		if _, err := s.catalog.CreateServicePhoto(ctx, &domain.ServicePhoto{
			ServiceID:  serviceID,
			Photo:      photoPath("service_photos", svc.Title),
			Caption:    &caption,
			UploadedAt: created,
		}); err != nil {
			return nil, err
		}
		report.ServicePhotos++

		for j, st := range svc.Types {
			price := st.Price
			typeID, err := s.catalog.CreateServiceType(ctx, &domain.ServiceType{
				ServiceID:   serviceID,
				Title:       st.Title,
				Description: &desc,
				Price:       &price,
				CreatedAt:   created.Add(time.Duration(j) * time.Second),
			})
			if err != nil {
				return nil, err
			}
			report.ServiceTypes++

			typeCaption := fmt.Sprintf("%s demo photo", st.Title)
			if _, err := s.catalog.CreateServiceTypePhoto(ctx, &domain.ServiceTypePhoto{
				ServiceTypeID: typeID,
				Photo:         photoPath("service_type_photos", st.Title),
				Caption:       &typeCaption,
				UploadedAt:    created,
			}); err != nil {
				return nil, err
			}
			report.TypePhotos++
		}
	}

	log.Info("catalog loaded",
		zap.Int("categories", report.Categories),
		zap.Int("units", report.Units),
		zap.Int("services", report.Services),
		zap.Int("service_types", report.ServiceTypes),
	)
	return serviceIDs, nil
}

func photoPath(dir, title string) string {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "_"))
	return fmt.Sprintf("%s/%s.jpg", dir, slug)
}

// loadRatings inserts one rating per service for the demo user, in the
// same order the services were created.
func (s *Seeder) loadRatings(
	ctx context.Context,
	log *zap.Logger,
	report *domain.SeedReport,
	demoUserID int64,
	serviceIDs []int64,
) error {
	created := s.now().UTC()

	for i, svc := range s.data.Services {
		review := svc.Review
		if _, err := s.ratings.CreateRating(ctx, &domain.Rating{
			ServiceID: serviceIDs[i],
			UserID:    demoUserID,
			Rating:    svc.Rating,
			Review:    &review,
			CreatedAt: created,
		}); err != nil {
			return err
		}
		report.Ratings++
	}

	log.Info("ratings loaded", zap.Int("ratings", report.Ratings))
	return nil
}
