package rod

import (
	"context"
	"log/slog"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Ensure LoggingRenderer implements screamingtom.Renderer.
var _ screamingtom.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   screamingtom.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next screamingtom.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Navigate logs the URL, status, and duration of each navigation.
func (r *LoggingRenderer) Navigate(ctx context.Context, url string) (status int, err error) {
	defer func(begin time.Time) {
		r.logger.Info("navigate",
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Navigate(ctx, url)
}

// HTML delegates to the wrapped renderer.
func (r *LoggingRenderer) HTML(ctx context.Context) (string, error) {
	return r.next.HTML(ctx)
}

// ExtractAnchors logs the anchor count and delegates.
func (r *LoggingRenderer) ExtractAnchors(ctx context.Context) (urls []string, err error) {
	defer func() {
		r.logger.Debug("extract anchors", "count", len(urls), "err", err)
	}()
	return r.next.ExtractAnchors(ctx)
}

// ExtractImages logs the image count and delegates.
func (r *LoggingRenderer) ExtractImages(ctx context.Context) (urls []string, err error) {
	defer func() {
		r.logger.Debug("extract images", "count", len(urls), "err", err)
	}()
	return r.next.ExtractImages(ctx)
}

// ExtractFileLinks logs the file link count and delegates.
func (r *LoggingRenderer) ExtractFileLinks(ctx context.Context) (urls []string, err error) {
	defer func() {
		r.logger.Debug("extract file links", "count", len(urls), "err", err)
	}()
	return r.next.ExtractFileLinks(ctx)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
