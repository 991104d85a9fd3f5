package screamingtom

import (
	"context"
	"time"
)

// DefaultCrawlBudget caps the combined number of pages and files collected
// in one crawl run. The loop exits as soon as the total exceeds it.
const DefaultCrawlBudget = 200

// OutcomeStatus describes what happened to a single dequeued URL.
type OutcomeStatus string

// Per-URL outcome statuses.
const (
	// OutcomeVisited means the URL was navigated to and its links extracted.
	OutcomeVisited OutcomeStatus = "visited"
	// OutcomeFile means the URL was recorded as a file without navigation.
	OutcomeFile OutcomeStatus = "file"
	// OutcomeSkipped means the URL was consumed without any processing.
	OutcomeSkipped OutcomeStatus = "skipped"
	// OutcomeFailed means navigation was attempted but produced no links.
	OutcomeFailed OutcomeStatus = "failed"
)

// PageOutcome records the fate of one URL popped from the frontier. Every
// dequeued URL yields exactly one outcome, so a crawl's behavior can be
// verified without parsing logs.
type PageOutcome struct {
	URL         string
	Status      OutcomeStatus
	Reason      string // populated for skipped and failed outcomes
	HTTPStatus  int    // populated when navigation received a response
	ContentHash string // xxhash of rendered HTML for visited pages
}

// CrawlResult holds the sets a crawl run produced. Pages contains every URL
// that was marked for navigation, including ones whose fetch later failed.
// Files contains every URL classified as a downloadable file or image.
type CrawlResult struct {
	Pages    map[string]bool
	Files    map[string]bool
	Outcomes []PageOutcome
}

// NewCrawlResult returns an empty CrawlResult with initialized sets.
func NewCrawlResult() *CrawlResult {
	return &CrawlResult{
		Pages: make(map[string]bool),
		Files: make(map[string]bool),
	}
}

// Total returns the combined page and file count used for budget checks and
// tier classification.
func (r *CrawlResult) Total() int {
	return len(r.Pages) + len(r.Files)
}

// Renderer drives one headless browser session. A session owns a single
// page, so calls are not safe for concurrent use; the crawl engine is
// strictly sequential by design.
type Renderer interface {
	// Navigate loads the URL and returns the HTTP status of the document
	// response. A non-nil error means no usable response was received and
	// the page must not be used for extraction.
	Navigate(ctx context.Context, url string) (status int, err error)

	// HTML returns the rendered DOM of the current page.
	HTML(ctx context.Context) (string, error)

	// ExtractAnchors returns the absolute href of every anchor on the
	// current page.
	ExtractAnchors(ctx context.Context) ([]string, error)

	// ExtractImages returns the absolute src of every image on the
	// current page.
	ExtractImages(ctx context.Context) ([]string, error)

	// ExtractFileLinks returns the subset of anchor hrefs that classify
	// as downloadable files.
	ExtractFileLinks(ctx context.Context) ([]string, error)

	// Close releases the browser session.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// DelayPolicy resolves how long the crawler must pause between navigations
// on a site. Implementations never fail; they fall back to a default delay.
type DelayPolicy interface {
	ResolveCrawlDelay(ctx context.Context, siteRoot string) time.Duration
}

// Frontier manages the queue of URLs awaiting a visit, with built-in
// deduplication of everything ever pushed.
type Frontier interface {
	// Push adds a URL to the queue.
	// Returns false if the URL has already been seen.
	Push(url string) bool

	// Pop removes and returns the next URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs waiting in the queue.
	Len() int

	// Seen returns true if the URL has been queued at some point.
	Seen(url string) bool
}

// SitemapService discovers URLs from a site's published sitemaps, used to
// pre-seed the frontier before link-following begins.
type SitemapService interface {
	// Discover finds URLs from robots.txt sitemap directives or
	// /sitemap.xml. Sitemap indexes are resolved recursively. Returns an
	// empty slice when the site publishes no sitemap.
	Discover(ctx context.Context, siteRoot string) ([]string, error)
}
