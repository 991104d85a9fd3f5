package crawler_test

import (
	"fmt"
	"sync"
	"testing"

	screamingtom "github.com/TBB10/ScreamingTom"
	"github.com/TBB10/ScreamingTom/crawler"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier(1000, 0.001)

	ok := f.Push("https://example.com/a")
	assert.True(t, ok, "first push should succeed")

	ok = f.Push("https://example.com/a")
	assert.False(t, ok, "duplicate URL should be rejected")
}

func TestFrontier_Push_dedupes_by_stripped_fragment(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier(1000, 0.001)

	assert.True(t, f.Push("https://example.com/a#intro"))
	assert.False(t, f.Push("https://example.com/a#usage"), "URLs differing only by fragment are duplicates")

	url, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", url, "stored URL should have fragment stripped")
}

func TestFrontier_Pop_returns_URLs_in_insertion_order(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier(1000, 0.001)

	f.Push("https://example.com/")
	f.Push("https://example.com/a")
	f.Push("https://example.com/b")

	for _, want := range []string{"https://example.com/", "https://example.com/a", "https://example.com/b"} {
		url, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, url)
	}

	_, ok := f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier(1000, 0.001)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push("https://example.com/a")
	assert.Equal(t, 1, f.Len())

	f.Push("https://example.com/b")
	assert.Equal(t, 2, f.Len())

	f.Pop()
	f.Pop()
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Seen_tracks_all_pushed_URLs(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier(1000, 0.001)

	assert.False(t, f.Seen("https://example.com/a"), "unseen URL should return false")

	f.Push("https://example.com/a")
	assert.True(t, f.Seen("https://example.com/a"))
	assert.True(t, f.Seen("https://example.com/a#frag"), "fragment variants count as seen")

	f.Pop()
	assert.True(t, f.Seen("https://example.com/a"), "popped URL should still be seen")
}

func TestFrontier_implements_domain_interface(t *testing.T) {
	t.Parallel()
	var _ screamingtom.Frontier = crawler.NewFrontier(10, 0.001)
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier(10000, 0.001)

	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Push(fmt.Sprintf("https://example.com/%d/%d", id, j))
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Pop()
				f.Len()
			}
		}()
	}

	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < numOpsPerGoroutine; j++ {
			url := fmt.Sprintf("https://example.com/%d/%d", i, j)
			assert.True(t, f.Seen(url), "pushed URL %s should be seen", url)
		}
	}
}
