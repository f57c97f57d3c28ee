//go:build unit

package commands_test

import (
	"context"
	"testing"

	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/errs"
	"cellar-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAddToCart(t *testing.T) {
	ctx := context.Background()
	alice := builder.NewShopper("alice@example.com")

	t.Run("new line keeps the requested quantity", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		id := m.stock(t, b)

		res := m.add(t, alice, b, 4)
		assert.Equal(t, id, res.Identity)
		assert.Equal(t, 4, res.Quantity)
		assert.False(t, res.Clamped)

		lines := m.store.CartLines(alice)
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity())
	})

	t.Run("second add merges into the same line", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		m.stock(t, b)

		first := m.add(t, alice, b, 4)
		second := m.add(t, alice, b, 6)

		assert.Equal(t, first.LineID, second.LineID)
		assert.Equal(t, 10, second.Quantity)
		assert.Len(t, m.store.CartLines(alice), 1)
	})

	t.Run("merge is clamped to the listing quantity", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		m.stock(t, b)

		m.add(t, alice, b, 20)
		res := m.add(t, alice, b, 20)

		assert.Equal(t, 30, res.Quantity)
		assert.True(t, res.Clamped)
	})

	t.Run("a line created concurrently is merged into", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		id := m.stock(t, b)
		l, ok := m.store.Listing("red", id)
		require.True(t, ok)
		other, err := cart.NewLine(alice, l.Snapshot(), 5, now0)
		require.NoError(t, err)
		m.store.RaceCartLine(other)

		res := m.add(t, alice, b, 4)

		assert.Equal(t, other.ID(), res.LineID)
		assert.Equal(t, 9, res.Quantity)
		lines := m.store.CartLines(alice)
		require.Len(t, lines, 1)
		assert.Equal(t, 9, lines[0].Quantity())
	})

	t.Run("adding reserves nothing", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		id := m.stock(t, b)

		m.add(t, alice, b, 30)
		m.add(t, builder.NewShopper("bob@example.com"), b, 30)

		l, ok := m.store.Listing("red", id)
		require.True(t, ok)
		assert.Equal(t, 30, l.QuantityAvailable())
	})

	t.Run("unknown listing", func(t *testing.T) {
		m := newMarket(t)
		_, err := m.cart.AddToCart(ctx, alice, wineInput(wine(100, 1)), 1)
		assert.ErrorIs(t, err, errs.ErrNoSuchListing)
	})

	t.Run("guest", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		m.stock(t, b)
		_, err := m.cart.AddToCart(ctx, shopper.Guest(), wineInput(b), 1)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		m := newMarket(t)
		b := wine(100, 30)
		m.stock(t, b)
		for _, q := range []int{0, -1} {
			_, err := m.cart.AddToCart(ctx, alice, wineInput(b), q)
			assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		}
		assert.Empty(t, m.store.CartLines(alice))
	})
}

func TestAddToCart_MergeProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := newMarket(t)
		available := rapid.IntRange(1, 60).Draw(rt, "available")
		b := wine(100, available)
		m.stock(t, b)
		who := builder.NewShopper("p@example.com")

		want := 0
		for _, q := range rapid.SliceOfN(rapid.IntRange(1, 25), 1, 8).Draw(rt, "adds") {
			res, err := m.cart.AddToCart(context.Background(), who, wineInput(b), q)
			if err != nil {
				rt.Fatalf("add %d: %v", q, err)
			}
			if want == 0 {
				want = q
			} else {
				want = min(want+q, available)
			}
			if res.Quantity != want {
				rt.Fatalf("quantity %d, want %d", res.Quantity, want)
			}
		}
		if n := len(m.store.CartLines(who)); n != 1 {
			rt.Fatalf("%d lines, want 1", n)
		}
	})
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	alice := builder.NewShopper("alice@example.com")

	t.Run("removes only the named line", func(t *testing.T) {
		m := newMarket(t)
		a, b := wine(100, 30), wine(50, 30)
		idA := m.stock(t, a)
		m.stock(t, b)
		m.add(t, alice, a, 1)
		m.add(t, alice, b, 1)

		require.NoError(t, m.cart.RemoveFromCart(ctx, alice, idA))

		lines := m.store.CartLines(alice)
		require.Len(t, lines, 1)
		assert.NotEqual(t, idA, lines[0].Identity())
	})

	t.Run("missing line", func(t *testing.T) {
		m := newMarket(t)
		err := m.cart.RemoveFromCart(ctx, alice, "nope")
		assert.ErrorIs(t, err, errs.ErrCartLineNotFound)
	})

	t.Run("guest", func(t *testing.T) {
		m := newMarket(t)
		err := m.cart.RemoveFromCart(ctx, shopper.Guest(), "nope")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
