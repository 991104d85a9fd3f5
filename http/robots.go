// Package http provides HTTP-based implementations of the politeness and
// sitemap services.
package http

import (
	"bufio"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// DefaultCrawlDelay is used whenever a site's robots.txt does not yield a
// usable Crawl-delay directive.
const DefaultCrawlDelay = 1 * time.Second

// Ensure DelayPolicy implements screamingtom.DelayPolicy at compile time.
var _ screamingtom.DelayPolicy = (*DelayPolicy)(nil)

// DelayPolicy resolves a site's crawl delay from its robots.txt.
type DelayPolicy struct {
	client *http.Client
}

// NewDelayPolicy creates a DelayPolicy with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewDelayPolicy(client *http.Client) *DelayPolicy {
	if client == nil {
		client = http.DefaultClient
	}
	return &DelayPolicy{client: client}
}

// ResolveCrawlDelay fetches {siteRoot}/robots.txt once and returns the
// value of the first Crawl-delay directive as a duration in seconds. The
// token match is case-sensitive and the value must be a non-negative
// integer. Any failure along the way (network error, non-200 status,
// missing directive, unparseable value) falls back to DefaultCrawlDelay;
// there is no retry.
func (p *DelayPolicy) ResolveCrawlDelay(ctx context.Context, siteRoot string) time.Duration {
	robotsURL := strings.TrimSuffix(siteRoot, "/") + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return DefaultCrawlDelay
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return DefaultCrawlDelay
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultCrawlDelay
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "Crawl-delay") {
			continue
		}
		// Only the first matching line is considered.
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			return DefaultCrawlDelay
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || seconds < 0 {
			return DefaultCrawlDelay
		}
		return time.Duration(seconds) * time.Second
	}

	return DefaultCrawlDelay
}
