// Package slog provides logging decorators for domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Ensure LoggingDealService implements screamingtom.DealService.
var _ screamingtom.DealService = (*LoggingDealService)(nil)

// LoggingDealService wraps a DealService with logging.
type LoggingDealService struct {
	next   screamingtom.DealService
	logger *slog.Logger
}

// NewLoggingDealService creates a new LoggingDealService.
func NewLoggingDealService(next screamingtom.DealService, logger *slog.Logger) *LoggingDealService {
	return &LoggingDealService{next: next, logger: logger}
}

// FetchSiteURL delegates to the wrapped service and logs the operation.
func (s *LoggingDealService) FetchSiteURL(ctx context.Context, dealID string) (siteURL string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch deal site URL",
			"deal_id", dealID,
			"site_url", siteURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchSiteURL(ctx, dealID)
}

// UpdateRecommendedPackage delegates to the wrapped service and logs the operation.
func (s *LoggingDealService) UpdateRecommendedPackage(ctx context.Context, dealID, pkg string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("update recommended package",
			"deal_id", dealID,
			"package", pkg,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRecommendedPackage(ctx, dealID, pkg)
}
