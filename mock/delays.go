package mock

import (
	"context"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

var _ screamingtom.DelayPolicy = (*DelayPolicy)(nil)

// DelayPolicy is a mock implementation of screamingtom.DelayPolicy.
type DelayPolicy struct {
	ResolveCrawlDelayFn func(ctx context.Context, siteRoot string) time.Duration
}

func (p *DelayPolicy) ResolveCrawlDelay(ctx context.Context, siteRoot string) time.Duration {
	return p.ResolveCrawlDelayFn(ctx, siteRoot)
}
