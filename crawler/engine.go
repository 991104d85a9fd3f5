package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cespare/xxhash/v2"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Skip and failure reasons recorded in per-URL outcomes.
const (
	ReasonLoginRedirect  = "login redirect"
	ReasonAlreadyVisited = "already visited"
	ReasonDirectFile     = "direct file link"
	ReasonNavigation     = "navigation error"
	ReasonHTTPStatus     = "non-200 status"
	ReasonCanceled       = "canceled"
)

// engine runs the crawl loop for a single site. It owns the frontier and
// result sets for the run; the renderer session is owned by the caller.
type engine struct {
	renderer screamingtom.Renderer
	frontier *Frontier
	pacer    *Pacer
	budget   int
	visited  map[string]bool
	logger   *slog.Logger
}

// run drives the pop, classify, fetch, extract, enqueue loop until the
// frontier is exhausted or the budget is exceeded. Per-URL errors are
// recorded as outcomes and never abort the crawl.
func (e *engine) run(ctx context.Context, siteRoot string) *screamingtom.CrawlResult {
	result := screamingtom.NewCrawlResult()

	for {
		// Hard early exit once the budget is crossed, even mid-frontier.
		if result.Total() > e.budget {
			e.logger.Info("crawl budget exceeded",
				"pages", len(result.Pages),
				"files", len(result.Files),
				"budget", e.budget,
			)
			break
		}

		current, ok := e.frontier.Pop()
		if !ok {
			break
		}
		current = screamingtom.StripFragment(current)

		if screamingtom.IsLoginRedirect(current) {
			result.Outcomes = append(result.Outcomes, screamingtom.PageOutcome{
				URL:    current,
				Status: screamingtom.OutcomeSkipped,
				Reason: ReasonLoginRedirect,
			})
			continue
		}

		if e.visited[current] {
			result.Outcomes = append(result.Outcomes, screamingtom.PageOutcome{
				URL:    current,
				Status: screamingtom.OutcomeSkipped,
				Reason: ReasonAlreadyVisited,
			})
			continue
		}

		// Direct file links are counted, never navigated to.
		if screamingtom.Classify(current) == screamingtom.KindFile {
			result.Files[current] = true
			result.Outcomes = append(result.Outcomes, screamingtom.PageOutcome{
				URL:    current,
				Status: screamingtom.OutcomeFile,
				Reason: ReasonDirectFile,
			})
			continue
		}

		// Mark optimistically: a failed fetch still counts the URL as a
		// visited page and consumes a budget slot.
		e.visited[current] = true
		result.Pages[current] = true

		if err := e.pacer.Wait(ctx); err != nil {
			result.Outcomes = append(result.Outcomes, screamingtom.PageOutcome{
				URL:    current,
				Status: screamingtom.OutcomeFailed,
				Reason: ReasonCanceled,
			})
			break
		}

		status, err := e.renderer.Navigate(ctx, current)
		if err != nil {
			e.logger.Warn("navigation failed", "url", current, "err", err)
			result.Outcomes = append(result.Outcomes, screamingtom.PageOutcome{
				URL:    current,
				Status: screamingtom.OutcomeFailed,
				Reason: ReasonNavigation,
			})
			continue
		}
		if status != http.StatusOK {
			e.logger.Info("skipping page", "url", current, "status", status)
			result.Outcomes = append(result.Outcomes, screamingtom.PageOutcome{
				URL:        current,
				Status:     screamingtom.OutcomeFailed,
				Reason:     ReasonHTTPStatus,
				HTTPStatus: status,
			})
			continue
		}

		e.extract(ctx, current, status, siteRoot, result)
	}

	return result
}

// extract pulls links from the rendered page, enqueues internal ones, and
// records discovered files and images. Extraction failures degrade to empty
// sets; the page itself has already been counted.
func (e *engine) extract(ctx context.Context, current string, status int, siteRoot string, result *screamingtom.CrawlResult) {
	anchors, err := e.renderer.ExtractAnchors(ctx)
	if err != nil {
		e.logger.Warn("anchor extraction failed", "url", current, "err", err)
	}
	for _, link := range anchors {
		if !screamingtom.IsInternal(link, siteRoot) {
			continue
		}
		e.frontier.Push(screamingtom.StripFragment(link))
	}

	fileLinks, err := e.renderer.ExtractFileLinks(ctx)
	if err != nil {
		e.logger.Warn("file link extraction failed", "url", current, "err", err)
	}
	for _, link := range fileLinks {
		result.Files[link] = true
	}

	images, err := e.renderer.ExtractImages(ctx)
	if err != nil {
		e.logger.Warn("image extraction failed", "url", current, "err", err)
	}
	for _, src := range images {
		result.Files[src] = true
	}

	outcome := screamingtom.PageOutcome{
		URL:        current,
		Status:     screamingtom.OutcomeVisited,
		HTTPStatus: status,
	}
	if html, err := e.renderer.HTML(ctx); err == nil {
		outcome.ContentHash = fmt.Sprintf("%x", xxhash.Sum64String(html))
	}
	result.Outcomes = append(result.Outcomes, outcome)
}
