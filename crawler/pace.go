package crawler

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the site's crawl delay between successive navigations
// using a token bucket with burst 1. The first Wait returns immediately;
// every later Wait blocks until the full delay has elapsed since the
// previous one, whether or not the navigation in between succeeded.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer for the given delay between navigations.
// A zero delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the crawl delay allows the next navigation.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
