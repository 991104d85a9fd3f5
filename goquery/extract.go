// Package goquery extracts link and image URLs from rendered HTML using
// CSS selectors. Relative hrefs are resolved against the page URL so the
// caller always sees absolute URLs, matching what a browser's DOM reports.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// ExtractAnchors returns the absolute URL of every anchor with an href
// attribute, deduplicated in document order. Non-HTTP links (javascript:,
// mailto:, tel:, data:) are skipped.
func ExtractAnchors(html, baseURL string) ([]string, error) {
	return extractAttr(html, baseURL, "a[href]", "href")
}

// ExtractImages returns the absolute URL of every image with a src
// attribute, deduplicated in document order.
func ExtractImages(html, baseURL string) ([]string, error) {
	return extractAttr(html, baseURL, "img[src]", "src")
}

// ExtractFileLinks returns the subset of anchor URLs that classify as
// downloadable files.
func ExtractFileLinks(html, baseURL string) ([]string, error) {
	anchors, err := ExtractAnchors(html, baseURL)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, link := range anchors {
		if screamingtom.Classify(link) == screamingtom.KindFile {
			files = append(files, link)
		}
	}
	return files, nil
}

// extractAttr collects the named attribute from every element matching the
// selector, resolved against baseURL.
func extractAttr(html, baseURL, selector, attr string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, screamingtom.Errorf(screamingtom.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, screamingtom.Errorf(screamingtom.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var urls []string

	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		value, exists := sel.Attr(attr)
		if !exists || value == "" {
			return
		}
		if isNonHTTPLink(value) {
			return
		}
		resolved := resolveURL(base, value)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		urls = append(urls, resolved)
	})

	return urls, nil
}

// isNonHTTPLink reports whether an href points outside the web entirely.
func isNonHTTPLink(href string) bool {
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves a possibly-relative URL against a base URL.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
