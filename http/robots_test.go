package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sthttp "github.com/TBB10/ScreamingTom/http"
	"github.com/stretchr/testify/assert"
)

func robotsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/robots.txt", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDelayPolicy_ResolveCrawlDelay(t *testing.T) {
	t.Parallel()

	t.Run("parses Crawl-delay directive", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "User-agent: *\nCrawl-delay: 5\nDisallow: /private\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, 5*time.Second, delay)
	})

	t.Run("uses first matching line only", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "Crawl-delay: 3\nCrawl-delay: 9\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, 3*time.Second, delay)
	})

	t.Run("defaults to one second on 404", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 404, "not found")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, time.Second, delay)
	})

	t.Run("defaults when directive is absent", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "User-agent: *\nDisallow: /admin\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, time.Second, delay)
	})

	t.Run("token match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "crawl-delay: 7\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, time.Second, delay)
	})

	t.Run("defaults on unparseable value", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "Crawl-delay: soon\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, time.Second, delay)
	})

	t.Run("defaults on negative value", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "Crawl-delay: -2\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, time.Second, delay)
	})

	t.Run("defaults on network failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		p := sthttp.NewDelayPolicy(nil)
		delay := p.ResolveCrawlDelay(context.Background(), srv.URL)
		assert.Equal(t, time.Second, delay)
	})

	t.Run("handles trailing slash on site root", func(t *testing.T) {
		t.Parallel()

		srv := robotsServer(t, 200, "Crawl-delay: 2\n")
		p := sthttp.NewDelayPolicy(nil)

		delay := p.ResolveCrawlDelay(context.Background(), srv.URL+"/")
		assert.Equal(t, 2*time.Second, delay)
	})
}
