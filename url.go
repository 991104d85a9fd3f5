package screamingtom

import (
	"net/url"
	"strings"
)

// Kind classifies a URL as a navigable page or a downloadable file.
type Kind int

// URL classifications.
const (
	KindPage Kind = iota
	KindFile
)

// fileExtensions lists the document, archive, spreadsheet, presentation and
// media extensions that mark a URL as a downloadable file rather than a page.
var fileExtensions = []string{
	".pdf", ".doc", ".docx", ".zip", ".rar", ".ppt", ".pptx",
	".xls", ".xlsx", ".csv", ".jpg", ".jpeg", ".png", ".gif",
	".mp3", ".wav", ".ogg", ".m4a", ".mp4", ".avi", ".mov", ".mkv",
}

// StripFragment removes everything from the first '#' onward.
// It is idempotent: stripping an already-stripped URL is a no-op.
func StripFragment(rawURL string) string {
	if i := strings.Index(rawURL, "#"); i != -1 {
		return rawURL[:i]
	}
	return rawURL
}

// IsLoginRedirect reports whether a URL is an authentication-wall bounce:
// its path contains the sign_in segment and its query carries a destination
// parameter pointing back at the page the crawler actually asked for.
// Such URLs are skipped rather than counted as content.
func IsLoginRedirect(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.Contains(u.Path, "sign_in") {
		return false
	}
	return u.Query().Has("destination")
}

// Classify returns KindFile if any known file extension occurs anywhere in
// the URL, and KindPage otherwise. The match is deliberately a substring
// match rather than a suffix match so that download URLs which bury the
// extension mid-path (e.g. /download/report.pdf?v=2) are still counted.
func Classify(rawURL string) Kind {
	for _, ext := range fileExtensions {
		if strings.Contains(rawURL, ext) {
			return KindFile
		}
	}
	return KindPage
}

// IsInternal reports whether a URL belongs to the crawled site. The check is
// substring containment of the site root, mirroring Classify's loose
// semantics; scheme or host variants that embed the root still match.
func IsInternal(rawURL, siteRoot string) bool {
	return strings.Contains(rawURL, siteRoot)
}
