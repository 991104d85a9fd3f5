package screamingtom_test

import (
	"errors"
	"fmt"
	"testing"

	screamingtom "github.com/TBB10/ScreamingTom"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := screamingtom.Errorf(screamingtom.ENOTFOUND, "deal %q not found", "42")

	assert.Equal(t, screamingtom.ENOTFOUND, screamingtom.ErrorCode(err))
	assert.Equal(t, "deal \"42\" not found", screamingtom.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, screamingtom.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, screamingtom.EINTERNAL, screamingtom.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := screamingtom.Errorf(screamingtom.ESETUP, "browser launch failed")
	wrapped := fmt.Errorf("starting crawl: %w", inner)

	assert.Equal(t, screamingtom.ESETUP, screamingtom.ErrorCode(wrapped))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, screamingtom.ErrorMessage(nil))
}
