package rod_test

import (
	"context"
	"testing"

	"github.com/TBB10/ScreamingTom/rod"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Navigate_returns_error_for_canceled_context(t *testing.T) {
	t.Parallel()

	r := &rod.Renderer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Navigate(ctx, "https://example.com/")
	require.ErrorIs(t, err, context.Canceled)
}
