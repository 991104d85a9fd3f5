package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sthttp "github.com/TBB10/ScreamingTom/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Discover(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemap from robots.txt directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/urls.xml\n", srv.URL)
		})
		mux.HandleFunc("/urls.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/a</loc></url>
  <url><loc>%[1]s/b</loc></url>
  <url><loc>%[1]s/a</loc></url>
</urlset>`, srv.URL)
		})

		svc := sthttp.NewSitemapService(nil)
		urls, err := svc.Discover(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls, "URLs are deduplicated")
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/page</loc></url></urlset>`, srv.URL)
		})

		svc := sthttp.NewSitemapService(nil)
		urls, err := svc.Discover(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<sitemapindex>
  <sitemap><loc>%[1]s/pages.xml</loc></sitemap>
  <sitemap><loc>%[1]s/posts.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
		})
		mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/about</loc></url></urlset>`, srv.URL)
		})
		mux.HandleFunc("/posts.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/blog/1</loc></url></urlset>`, srv.URL)
		})

		svc := sthttp.NewSitemapService(nil)
		urls, err := svc.Discover(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{srv.URL + "/about", srv.URL + "/blog/1"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(srv.Close)

		svc := sthttp.NewSitemapService(nil)
		urls, err := svc.Discover(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})
}
