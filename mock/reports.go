package mock

import (
	"context"

	screamingtom "github.com/TBB10/ScreamingTom"
)

var _ screamingtom.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of screamingtom.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *screamingtom.CrawlReport) error
	FindReportByIDFn func(ctx context.Context, id string) (*screamingtom.CrawlReport, error)
	FindReportsFn    func(ctx context.Context, filter screamingtom.ReportFilter) ([]*screamingtom.CrawlReport, error)
}

func (s *ReportService) CreateReport(ctx context.Context, report *screamingtom.CrawlReport) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*screamingtom.CrawlReport, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter screamingtom.ReportFilter) ([]*screamingtom.CrawlReport, error) {
	return s.FindReportsFn(ctx, filter)
}
