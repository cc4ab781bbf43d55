package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marketplace-seeder/internal/domain/repository"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"github.com/marketplace-seeder/internal/pkg/utils"
	"github.com/marketplace-seeder/internal/verify"
	"go.uber.org/zap"
)

// ReportHandler serves the seeded-data report endpoints: current row
// counts per table and the integrity verification result.
type ReportHandler struct {
	stats    repository.StatsRepository
	verifier *verify.Verifier
	logger   *zap.Logger
}

func NewReportHandler(stats repository.StatsRepository, verifier *verify.Verifier, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		stats:    stats,
		verifier: verifier,
		logger:   logger,
	}
}

// GetReport returns the current row count of every seeded table.
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	ctx := c.Context()

	counts, err := h.stats.TableCounts(ctx)
	if err != nil {
		h.logger.Error("failed to get table counts", zap.Error(err))
		return utils.SendError(c, apperrors.ErrDatabaseError)
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	return utils.SendSuccess(c, counts, &utils.Meta{Total: total})
}

// GetVerify runs the integrity checks and returns the report. A failed
// check is still a 200 with passed=false; only query errors are 500s.
func (h *ReportHandler) GetVerify(c *fiber.Ctx) error {
	ctx := c.Context()

	report, err := h.verifier.Check(ctx)
	if err != nil {
		h.logger.Error("failed to verify seeded data", zap.Error(err))
		return utils.SendError(c, apperrors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, report, nil)
}
