package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/marketplace-seeder/internal/domain"
	"github.com/marketplace-seeder/internal/domain/repository"
	"go.uber.org/zap"
)

// Expected row counts for the fixed demo dataset: one country, 13
// provinces with three cities each, ten addresses across six cities.
const (
	ExpectedCountries = 1
	ExpectedProvinces = 13
	ExpectedCities    = 39
	ExpectedAddresses = 60
	ExpectedServices  = 5
)

// Verifier runs the post-seed integrity checks over the database.
type Verifier struct {
	stats  repository.StatsRepository
	logger *zap.Logger
}

func New(stats repository.StatsRepository, logger *zap.Logger) *Verifier {
	return &Verifier{
		stats:  stats,
		logger: logger,
	}
}

// Check runs every integrity check and returns the aggregated report.
// The report is returned even when checks fail so callers can surface
// per-check detail.
func (v *Verifier) Check(ctx context.Context) (*domain.IntegrityReport, error) {
	report := &domain.IntegrityReport{
		CheckedAt: time.Now().UTC(),
		Passed:    true,
	}

	counts, err := v.stats.TableCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("table counts: %w", err)
	}
	report.Counts = counts

	checks := []struct {
		name  string
		query func(context.Context) (int, error)
	}{
		{"addresses_resolve_city", v.stats.OrphanAddressCount},
		{"license_numbers_unique", v.stats.DuplicateLicenseCount},
		{"no_duplicate_service_links", v.stats.DuplicateServiceLinkCount},
		{"ratings_within_scale", v.stats.OutOfRangeRatingCount},
	}

	for _, c := range checks {
		violations, err := c.query(ctx)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", c.name, err)
		}
		result := domain.CheckResult{Name: c.name, Passed: violations == 0}
		if violations > 0 {
			result.Detail = fmt.Sprintf("%d violating rows", violations)
			report.Passed = false
		}
		report.Checks = append(report.Checks, result)
	}

	expected := []struct {
		table string
		want  int
	}{
		{"address_country", ExpectedCountries},
		{"address_province", ExpectedProvinces},
		{"address_city", ExpectedCities},
		{"address_address", ExpectedAddresses},
		{"service_service", ExpectedServices},
	}
	for _, e := range expected {
		table, want := e.table, e.want
		got := counts[table]
		result := domain.CheckResult{
			Name:   "row_count_" + table,
			Passed: got == want,
		}
		if got != want {
			result.Detail = fmt.Sprintf("expected %d rows, found %d", want, got)
			report.Passed = false
		}
		report.Checks = append(report.Checks, result)
	}

	if report.Passed {
		v.logger.Info("integrity verification passed", zap.Int("checks", len(report.Checks)))
	} else {
		v.logger.Warn("integrity verification failed", zap.Any("checks", report.Checks))
	}

	return report, nil
}
