package mock

import (
	"context"

	screamingtom "github.com/TBB10/ScreamingTom"
)

var _ screamingtom.DealService = (*DealService)(nil)

// DealService is a mock implementation of screamingtom.DealService.
type DealService struct {
	FetchSiteURLFn             func(ctx context.Context, dealID string) (string, error)
	UpdateRecommendedPackageFn func(ctx context.Context, dealID, pkg string) error
}

func (s *DealService) FetchSiteURL(ctx context.Context, dealID string) (string, error) {
	return s.FetchSiteURLFn(ctx, dealID)
}

func (s *DealService) UpdateRecommendedPackage(ctx context.Context, dealID, pkg string) error {
	return s.UpdateRecommendedPackageFn(ctx, dealID, pkg)
}
