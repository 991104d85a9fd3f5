package crawler

import (
	"context"
	"io"
	"log/slog"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Assessor runs the full deal-sizing flow: look up the deal's site URL,
// crawl the site, classify the total into a migration package, write the
// recommendation back to the CRM, and persist a crawl report.
type Assessor struct {
	Deals   screamingtom.DealService
	Crawler *Crawler

	// Reports, when set, records each completed crawl. Persistence
	// failures are logged, never surfaced.
	Reports screamingtom.ReportService

	Logger *slog.Logger
}

// AssessDeal sizes the website attached to a deal and returns a structured
// assessment.
//
// Failure behavior mirrors the caller-facing contract: a missing deal ID is
// EINVALID, an unfetchable site URL is EUNAVAILABLE and aborts before the
// crawl starts, and a crawl setup failure propagates as ESETUP. A failed
// CRM write-back does not fail the assessment.
func (a *Assessor) AssessDeal(ctx context.Context, dealID string) (*screamingtom.Assessment, error) {
	logger := a.logger()

	if dealID == "" {
		return nil, screamingtom.Errorf(screamingtom.EINVALID, "deal ID required")
	}

	seedURL, err := a.Deals.FetchSiteURL(ctx, dealID)
	if err != nil {
		logger.Error("fetching site URL failed", "deal", dealID, "err", err)
		return nil, screamingtom.Errorf(screamingtom.EUNAVAILABLE,
			"cannot proceed: no site URL available for deal %s", dealID)
	}

	result, err := a.Crawler.Run(ctx, seedURL)
	if err != nil {
		return nil, err
	}

	assessment := &screamingtom.Assessment{
		DealID:    dealID,
		SeedURL:   seedURL,
		PageCount: len(result.Pages),
		FileCount: len(result.Files),
	}

	if assessment.Total() < screamingtom.MinConclusiveCount {
		// Too little content to classify: the site is likely
		// inaccessible or mostly behind a login. Flag for manual
		// verification and leave the CRM untouched.
		assessment.Inconclusive = true
		logger.Info("assessment inconclusive", "deal", dealID, "total", assessment.Total())
	} else {
		assessment.Package = screamingtom.RecommendPackage(assessment.Total())
		if err := a.Deals.UpdateRecommendedPackage(ctx, dealID, assessment.Package); err != nil {
			// Best-effort: the assessment itself is still meaningful.
			logger.Warn("CRM update failed", "deal", dealID, "err", err)
		}
	}

	a.saveReport(ctx, assessment)
	return assessment, nil
}

// saveReport persists a crawl report when a report service is configured.
func (a *Assessor) saveReport(ctx context.Context, assessment *screamingtom.Assessment) {
	if a.Reports == nil {
		return
	}
	report := &screamingtom.CrawlReport{
		DealID:    assessment.DealID,
		SeedURL:   assessment.SeedURL,
		PageCount: assessment.PageCount,
		FileCount: assessment.FileCount,
		Package:   assessment.Package,
	}
	if err := a.Reports.CreateReport(ctx, report); err != nil {
		a.logger().Warn("saving crawl report failed", "deal", assessment.DealID, "err", err)
	}
}

func (a *Assessor) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
