package crawler_test

import (
	"context"
	"testing"
	"time"

	"github.com/TBB10/ScreamingTom/crawler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer(t *testing.T) {
	t.Parallel()

	t.Run("first wait is immediate", func(t *testing.T) {
		t.Parallel()

		p := crawler.NewPacer(time.Second)

		start := time.Now()
		err := p.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 100*time.Millisecond, "first navigation should not wait")
	})

	t.Run("subsequent waits enforce the delay", func(t *testing.T) {
		t.Parallel()

		p := crawler.NewPacer(100 * time.Millisecond)

		require.NoError(t, p.Wait(context.Background()))

		start := time.Now()
		require.NoError(t, p.Wait(context.Background()))
		elapsed := time.Since(start)

		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for the crawl delay")
	})

	t.Run("zero delay disables pacing", func(t *testing.T) {
		t.Parallel()

		p := crawler.NewPacer(0)

		start := time.Now()
		for i := 0; i < 10; i++ {
			require.NoError(t, p.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		p := crawler.NewPacer(time.Second)
		require.NoError(t, p.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := p.Wait(ctx)
		assert.Error(t, err, "should fail when context times out")
	})
}
