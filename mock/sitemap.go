package mock

import (
	"context"

	screamingtom "github.com/TBB10/ScreamingTom"
)

var _ screamingtom.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of screamingtom.SitemapService.
type SitemapService struct {
	DiscoverFn func(ctx context.Context, siteRoot string) ([]string, error)
}

func (s *SitemapService) Discover(ctx context.Context, siteRoot string) ([]string, error) {
	return s.DiscoverFn(ctx, siteRoot)
}
