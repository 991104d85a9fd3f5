package screamingtom

import "context"

// DealService is the CRM collaborator: it supplies the site URL recorded
// against a deal and persists the recommended package computed from a crawl.
type DealService interface {
	// FetchSiteURL returns the current site URL stored on the deal.
	// Returns ENOTFOUND if the deal has no site URL recorded.
	FetchSiteURL(ctx context.Context, dealID string) (string, error)

	// UpdateRecommendedPackage writes the recommended migration package
	// back to the deal. Callers treat failures as best-effort.
	UpdateRecommendedPackage(ctx context.Context, dealID, pkg string) error
}

// Assessment is the structured result of sizing one deal's website.
type Assessment struct {
	DealID    string `json:"dealId"`
	SeedURL   string `json:"seedUrl"`
	PageCount int    `json:"pageCount"`
	FileCount int    `json:"fileCount"`

	// Package holds the recommended migration package. Empty when the
	// assessment is inconclusive.
	Package string `json:"package,omitempty"`

	// Inconclusive is set when the total count is below
	// MinConclusiveCount and manual verification is required.
	Inconclusive bool `json:"inconclusive,omitempty"`
}

// Total returns the combined page and file count.
func (a *Assessment) Total() int {
	return a.PageCount + a.FileCount
}
