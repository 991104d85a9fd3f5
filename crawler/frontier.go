package crawler

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Compile-time interface verification.
var _ screamingtom.Frontier = (*Frontier)(nil)

// Frontier is an in-memory crawl queue with Bloom filter deduplication.
// URLs are popped in insertion (FIFO) order, which makes site traversal
// deterministic for a given link graph. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push adds a URL to the frontier.
// Returns false if the URL has already been seen. Fragments are stripped
// before deduplication, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(rawURL string) bool {
	url := screamingtom.StripFragment(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the oldest queued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued at some point.
// Fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(screamingtom.StripFragment(rawURL))
}
