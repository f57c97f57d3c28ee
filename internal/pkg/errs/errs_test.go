//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"cellar-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the marker", func(t *testing.T) {
		cause := errors.New("connection reset")
		marked := errs.Mark(cause, errs.ErrDatabaseOperationFailed)

		assert.True(t, errs.Is(marked, errs.ErrDatabaseOperationFailed))
		assert.True(t, errs.Is(marked, cause))
		assert.False(t, errs.Is(marked, errs.ErrNoSuchListing))
	})

	t.Run("nil cause returns the marker itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrEmptyCart, errs.Mark(nil, errs.ErrEmptyCart))
	})

	t.Run("wrapping keeps sentinel identity", func(t *testing.T) {
		wrapped := errs.Wrapf(errs.ErrAuctionNotFound, "auction %s", "abc")
		assert.True(t, errs.Is(wrapped, errs.ErrAuctionNotFound))
		assert.Contains(t, wrapped.Error(), "auction abc")
	})

	t.Run("wrapping nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("root"), "outer")
	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
