// Package crawler provides the crawl engine and orchestration for sizing a
// single website: frontier management, politeness pacing, budget
// enforcement, and the deal assessment flow built on top of a crawl.
package crawler

import (
	"context"
	"io"
	"log/slog"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Frontier sizing for Bloom filter deduplication.
const (
	// frontierExpectedURLs is the expected number of URLs for filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate.
	frontierFalsePositiveRate = 0.001
)

// Crawler orchestrates one crawl run per call: it acquires a renderer
// session, resolves the site's crawl delay, drives the engine, and
// guarantees session teardown on every exit path.
type Crawler struct {
	// NewSession establishes a fresh renderer session for one run. A
	// failure here is the only crawl-level failure; everything after is
	// recovered per URL.
	NewSession func(ctx context.Context) (screamingtom.Renderer, error)

	// Delays resolves the per-site crawl delay once per run.
	Delays screamingtom.DelayPolicy

	// Sitemaps, when set, pre-seeds the frontier from the site's
	// published sitemaps before link-following begins.
	Sitemaps screamingtom.SitemapService

	// Budget caps the combined page and file count.
	// Defaults to screamingtom.DefaultCrawlBudget.
	Budget int

	Logger *slog.Logger
}

// Run crawls the site rooted at seedURL with a fresh visited set and
// returns the collected page and file sets.
func (c *Crawler) Run(ctx context.Context, seedURL string) (*screamingtom.CrawlResult, error) {
	return c.RunWithVisited(ctx, seedURL, nil)
}

// RunWithVisited crawls the site rooted at seedURL. The visited set is
// caller-supplied so already-processed URLs can be excluded; it is mutated
// in place and lives only as long as the caller keeps it. Passing nil
// starts from a clean slate.
//
// Returns an ESETUP error only when the renderer session cannot be
// established; every per-URL failure is recorded in the result's outcomes.
func (c *Crawler) RunWithVisited(ctx context.Context, seedURL string, visited map[string]bool) (*screamingtom.CrawlResult, error) {
	logger := c.logger()

	renderer, err := c.NewSession(ctx)
	if err != nil {
		return nil, screamingtom.Errorf(screamingtom.ESETUP, "establishing render session: %v", err)
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Warn("closing render session", "err", err)
		}
	}()

	delay := c.Delays.ResolveCrawlDelay(ctx, seedURL)
	logger.Info("starting crawl", "seed", seedURL, "delay", delay, "budget", c.budget())

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seedURL)
	c.seedFromSitemap(ctx, seedURL, frontier)

	if visited == nil {
		visited = make(map[string]bool)
	}

	e := &engine{
		renderer: renderer,
		frontier: frontier,
		pacer:    NewPacer(delay),
		budget:   c.budget(),
		visited:  visited,
		logger:   logger,
	}
	result := e.run(ctx, seedURL)

	logger.Info("crawl finished",
		"seed", seedURL,
		"pages", len(result.Pages),
		"files", len(result.Files),
	)
	return result, nil
}

// seedFromSitemap pushes sitemap-discovered internal URLs onto the
// frontier. Sitemap failures are logged and ignored; link-following alone
// still produces a valid crawl.
func (c *Crawler) seedFromSitemap(ctx context.Context, seedURL string, frontier *Frontier) {
	if c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.Discover(ctx, seedURL)
	if err != nil {
		c.logger().Warn("sitemap discovery failed", "seed", seedURL, "err", err)
		return
	}
	seeded := 0
	for _, u := range urls {
		if !screamingtom.IsInternal(u, seedURL) {
			continue
		}
		if frontier.Push(u) {
			seeded++
		}
	}
	c.logger().Info("seeded frontier from sitemap", "seed", seedURL, "urls", seeded)
}

func (c *Crawler) budget() int {
	if c.Budget > 0 {
		return c.Budget
	}
	return screamingtom.DefaultCrawlBudget
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
