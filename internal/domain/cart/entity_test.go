//go:build unit

package cart_test

import (
	"testing"
	"time"

	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/errs"
	"cellar-market/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var now = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func TestNewLine(t *testing.T) {
	snap := builder.NewListingBuilder().BuildSnapshot()
	owner := builder.NewShopper("buyer@example.com")

	t.Run("guest is rejected", func(t *testing.T) {
		_, err := cart.NewLine(shopper.Guest(), snap, 1, now)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("non positive quantity is rejected", func(t *testing.T) {
		_, err := cart.NewLine(owner, snap, 0, now)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("subtotal", func(t *testing.T) {
		line, err := cart.NewLine(owner, snap, 3, now)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(line.Subtotal()))
		assert.Equal(t, snap.Identity, line.Identity())
	})
}

func TestLine_Merge(t *testing.T) {
	snap := builder.NewListingBuilder().BuildSnapshot()
	owner := builder.NewShopper("buyer@example.com")

	t.Run("adds when stock allows", func(t *testing.T) {
		line, _ := cart.NewLine(owner, snap, 2, now)
		clamped, err := line.Merge(3, 10)
		require.NoError(t, err)
		assert.False(t, clamped)
		assert.Equal(t, 5, line.Quantity())
	})

	t.Run("clamps to available", func(t *testing.T) {
		line, _ := cart.NewLine(owner, snap, 4, now)
		clamped, err := line.Merge(4, 6)
		require.NoError(t, err)
		assert.True(t, clamped)
		assert.Equal(t, 6, line.Quantity())
	})

	t.Run("listing gone", func(t *testing.T) {
		line, _ := cart.NewLine(owner, snap, 4, now)
		_, err := line.Merge(1, 0)
		assert.ErrorIs(t, err, errs.ErrNoSuchListing)
		assert.Equal(t, 4, line.Quantity())
	})

	t.Run("merge never exceeds available and never exceeds the sum", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			start := rapid.IntRange(1, 50).Draw(rt, "start")
			requested := rapid.IntRange(1, 50).Draw(rt, "requested")
			available := rapid.IntRange(1, 100).Draw(rt, "available")

			line, err := cart.NewLine(owner, snap, start, now)
			require.NoError(rt, err)
			_, err = line.Merge(requested, available)
			require.NoError(rt, err)

			assert.Equal(rt, min(start+requested, available), line.Quantity())
		})
	})
}

func TestTotal(t *testing.T) {
	owner := builder.NewShopper("buyer@example.com")
	a, _ := cart.NewLine(owner, builder.NewListingBuilder().WithPrice(decimal.RequireFromString("12.50")).BuildSnapshot(), 2, now)
	b, _ := cart.NewLine(owner, builder.NewListingBuilder().WithYear("2001").BuildSnapshot(), 1, now)

	assert.True(t, decimal.RequireFromString("125").Equal(cart.Total([]*cart.Line{a, b})))
	assert.True(t, decimal.Zero.Equal(cart.Total(nil)))
}
