package slog

import (
	"context"
	"log/slog"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Ensure LoggingDelayPolicy implements screamingtom.DelayPolicy.
var _ screamingtom.DelayPolicy = (*LoggingDelayPolicy)(nil)

// LoggingDelayPolicy wraps a DelayPolicy with debug logging.
type LoggingDelayPolicy struct {
	next   screamingtom.DelayPolicy
	logger *slog.Logger
}

// NewLoggingDelayPolicy creates a new LoggingDelayPolicy.
func NewLoggingDelayPolicy(next screamingtom.DelayPolicy, logger *slog.Logger) *LoggingDelayPolicy {
	return &LoggingDelayPolicy{next: next, logger: logger}
}

// ResolveCrawlDelay delegates to the wrapped policy and logs the resolved delay.
func (p *LoggingDelayPolicy) ResolveCrawlDelay(ctx context.Context, siteRoot string) time.Duration {
	delay := p.next.ResolveCrawlDelay(ctx, siteRoot)
	p.logger.Debug("resolved crawl delay",
		"site_root", siteRoot,
		"delay", delay,
	)
	return delay
}
