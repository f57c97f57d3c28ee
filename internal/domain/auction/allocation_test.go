//go:build unit

package auction_test

import (
	"testing"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var t0 = time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)

func bid(email string, price int64, qty int, at time.Time) *auction.Placement {
	return builder.NewBidBuilder().WithEmail(email).WithPrice(price).WithQuantity(qty).WithPlacedAt(at).MustBuild()
}

func fills(a auction.Allocation) map[string]int {
	out := map[string]int{}
	for _, f := range a.Winners {
		out[f.Bid.Bidder().Email()] = f.Quantity
	}
	return out
}

func TestAllocate(t *testing.T) {
	a := bid("a@example.com", 10, 3, t0)
	b := bid("b@example.com", 20, 4, t0.Add(time.Minute))

	t.Run("descending awards the high bid first and partially fills the boundary", func(t *testing.T) {
		got := auction.Allocate([]*auction.Placement{a, b}, 5, auction.OrderDescending)

		assert.Equal(t, 5, got.Allocated)
		assert.Equal(t, 0, got.Remaining)
		assert.True(t, got.FullyAllocated())
		assert.Equal(t, map[string]int{"b@example.com": 4, "a@example.com": 1}, fills(got))
		assert.Empty(t, got.Losers)
	})

	t.Run("ascending walks from the lowest price", func(t *testing.T) {
		got := auction.Allocate([]*auction.Placement{b, a}, 5, auction.OrderAscending)

		assert.Equal(t, 5, got.Allocated)
		assert.Equal(t, map[string]int{"a@example.com": 3, "b@example.com": 2}, fills(got))
	})

	t.Run("under-subscribed leaves a remainder", func(t *testing.T) {
		c := bid("c@example.com", 50, 4, t0)
		got := auction.Allocate([]*auction.Placement{c}, 10, auction.OrderDescending)

		assert.Equal(t, 4, got.Allocated)
		assert.Equal(t, 6, got.Remaining)
		assert.False(t, got.FullyAllocated())
	})

	t.Run("no bids", func(t *testing.T) {
		got := auction.Allocate(nil, 7, auction.OrderDescending)
		assert.Empty(t, got.Winners)
		assert.Equal(t, 7, got.Remaining)
	})

	t.Run("bids after the boundary lose", func(t *testing.T) {
		hi := bid("hi@example.com", 30, 5, t0)
		lo := bid("lo@example.com", 5, 2, t0)
		got := auction.Allocate([]*auction.Placement{lo, hi}, 5, auction.OrderDescending)

		assert.Equal(t, map[string]int{"hi@example.com": 5}, fills(got))
		require.Len(t, got.Losers, 1)
		assert.Equal(t, lo.ID(), got.Losers[0].ID())
	})

	t.Run("equal prices go to the earlier bid", func(t *testing.T) {
		early := bid("early@example.com", 20, 2, t0)
		late := bid("late@example.com", 20, 2, t0.Add(time.Second))
		got := auction.Allocate([]*auction.Placement{late, early}, 3, auction.OrderDescending)

		assert.Equal(t, map[string]int{"early@example.com": 2, "late@example.com": 1}, fills(got))
	})
}

func TestAllocate_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		available := rapid.IntRange(1, 200).Draw(rt, "available")
		n := rapid.IntRange(0, 20).Draw(rt, "bids")
		order := rapid.SampledFrom([]auction.BidOrder{auction.OrderDescending, auction.OrderAscending}).Draw(rt, "order")

		bids := make([]*auction.Placement, n)
		demand := 0
		for i := range bids {
			price := rapid.Int64Range(1, 500).Draw(rt, "price")
			qty := rapid.IntRange(1, 40).Draw(rt, "qty")
			bids[i] = bid("x@example.com", price, qty, t0.Add(time.Duration(i)*time.Second))
			demand += qty
		}

		got := auction.Allocate(bids, available, order)

		assert.Equal(rt, min(demand, available), got.Allocated)
		assert.Equal(rt, available-got.Allocated, got.Remaining)
		assert.Equal(rt, n, len(got.Winners)+len(got.Losers))

		sum := 0
		partial := 0
		for _, f := range got.Winners {
			assert.Positive(rt, f.Quantity)
			assert.LessOrEqual(rt, f.Quantity, f.Bid.Quantity())
			if f.Quantity < f.Bid.Quantity() {
				partial++
			}
			sum += f.Quantity
		}
		assert.Equal(rt, got.Allocated, sum)
		assert.LessOrEqual(rt, partial, 1)
		if len(got.Losers) > 0 {
			assert.True(rt, got.FullyAllocated())
		}
	})
}

func TestRankBids(t *testing.T) {
	a := bid("a@example.com", 10, 1, t0)
	b := bid("b@example.com", 30, 1, t0)
	c := bid("c@example.com", 20, 1, t0)

	desc := auction.RankBids([]*auction.Placement{a, b, c}, auction.OrderDescending)
	asc := auction.RankBids([]*auction.Placement{a, b, c}, auction.OrderAscending)

	assert.Equal(t, []string{"b@example.com", "c@example.com", "a@example.com"}, emails(desc))
	assert.Equal(t, []string{"a@example.com", "c@example.com", "b@example.com"}, emails(asc))
}

func emails(ps []*auction.Placement) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Bidder().Email()
	}
	return out
}
