package screamingtom

import (
	"context"
	"time"
)

// CrawlReport is a persisted record of one completed crawl, kept so repeat
// assessments of the same deal are auditable.
type CrawlReport struct {
	ID        string    `json:"id"`
	DealID    string    `json:"dealId"`
	SeedURL   string    `json:"seedUrl"`
	PageCount int       `json:"pageCount"`
	FileCount int       `json:"fileCount"`
	Package   string    `json:"package"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *CrawlReport) Validate() error {
	if r.SeedURL == "" {
		return Errorf(EINVALID, "report seed URL required")
	}
	if r.PageCount < 0 || r.FileCount < 0 {
		return Errorf(EINVALID, "report counts must be non-negative")
	}
	return nil
}

// ReportService represents a service for managing crawl reports.
type ReportService interface {
	// CreateReport persists a new report.
	CreateReport(ctx context.Context, report *CrawlReport) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*CrawlReport, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*CrawlReport, error)
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	DealID *string `json:"dealId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
