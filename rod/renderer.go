// Package rod implements the page renderer using Chrome browser automation
// via go-rod. One Renderer owns one browser and one page for the lifetime
// of a crawl; pages are navigated in place rather than opened per URL.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	screamingtom "github.com/TBB10/ScreamingTom"
	"github.com/TBB10/ScreamingTom/goquery"
)

// userAgent is set once per session so the crawl presents a consistent
// identity to the target site.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// navigationTimeout bounds a single Navigate call. Some pages never emit a
// document response event, which would otherwise block the event wait
// forever when the caller's context has no deadline.
const navigationTimeout = 30 * time.Second

// Ensure Renderer implements screamingtom.Renderer at compile time.
var _ screamingtom.Renderer = (*Renderer)(nil)

// Renderer drives a single headless Chrome session. It is not safe for
// concurrent use; the crawl engine navigates strictly sequentially.
type Renderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page

	// currentURL is the URL of the last successful navigation, used to
	// resolve relative links in the rendered HTML.
	currentURL string
}

// NewRenderer launches a headless Chrome browser and opens the single page
// the session will reuse. Close must be called when the Renderer is no
// longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer() (*Renderer, error) {
	l := launcher.New().Leakless(true).Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent}); err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("setting user agent: %w", err)
	}

	return &Renderer{launcher: l, browser: browser, page: page}, nil
}

// Navigate loads the URL in the session's page, waits for the load event,
// and returns the HTTP status of the document response.
func (r *Renderer) Navigate(ctx context.Context, url string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	navCtx, cancel := context.WithTimeout(ctx, navigationTimeout)
	defer cancel()

	page := r.page.Context(navCtx)

	// Capture the status of the main document response; subresource
	// responses arrive on the same event stream and are ignored.
	status := 0
	wait := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return 0, err
	}
	wait()

	if err := page.WaitLoad(); err != nil {
		return status, err
	}

	r.currentURL = url
	return status, nil
}

// HTML returns the rendered DOM of the current page.
func (r *Renderer) HTML(ctx context.Context) (string, error) {
	return r.page.Context(ctx).HTML()
}

// ExtractAnchors returns the absolute href of every anchor on the current
// page.
func (r *Renderer) ExtractAnchors(ctx context.Context) ([]string, error) {
	html, err := r.HTML(ctx)
	if err != nil {
		return nil, err
	}
	return goquery.ExtractAnchors(html, r.currentURL)
}

// ExtractImages returns the absolute src of every image on the current
// page.
func (r *Renderer) ExtractImages(ctx context.Context) ([]string, error) {
	html, err := r.HTML(ctx)
	if err != nil {
		return nil, err
	}
	return goquery.ExtractImages(html, r.currentURL)
}

// ExtractFileLinks returns the anchor hrefs on the current page that
// classify as downloadable files.
func (r *Renderer) ExtractFileLinks(ctx context.Context) ([]string, error) {
	html, err := r.HTML(ctx)
	if err != nil {
		return nil, err
	}
	return goquery.ExtractFileLinks(html, r.currentURL)
}

// Close releases the browser session and kills the launched process.
func (r *Renderer) Close() error {
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}
