package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
	"github.com/clinicscribe-team/clinic-scribe/internal/infrastructure/cache"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = 60 * time.Second
)

// Dashboard handles practice statistics endpoints
type Dashboard struct {
	recordRepo domainrepo.RecordRepository
	cache      *cache.RedisClient
	logger     *zap.Logger
}

// NewDashboard creates the dashboard handler. Cache is optional.
func NewDashboard(recordRepo domainrepo.RecordRepository, cache *cache.RedisClient, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		recordRepo: recordRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Stats returns aggregate counters, cached briefly to keep the dashboard
// cheap to refresh
func (h *Dashboard) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		var cached domainrepo.DashboardStats
		hit, err := h.cache.GetJSON(ctx, dashboardStatsCacheKey, &cached)
		if err != nil && h.logger != nil {
			h.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		if hit {
			return HandleSuccess(h.logger, c, cached)
		}
	}

	stats, err := h.recordRepo.GetDashboardStats(ctx)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(ctx, dashboardStatsCacheKey, stats, dashboardStatsCacheTTL); err != nil && h.logger != nil {
			h.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	return HandleSuccess(h.logger, c, stats)
}
