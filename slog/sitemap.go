package slog

import (
	"context"
	"log/slog"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Ensure LoggingSitemapService implements screamingtom.SitemapService.
var _ screamingtom.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   screamingtom.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next screamingtom.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// Discover delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) Discover(ctx context.Context, siteRoot string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"site_root", siteRoot,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, siteRoot)
}
