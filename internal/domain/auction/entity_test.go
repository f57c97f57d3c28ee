//go:build unit

package auction_test

import (
	"testing"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/errs"
	"cellar-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	snap := builder.NewListingBuilder().BuildSnapshot()
	ends := t0.Add(4 * time.Hour)

	t.Run("seeded with the remaining quantity and the list price", func(t *testing.T) {
		a, err := auction.Open(snap, 2, snap.Price, ends, t0)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, 2, a.QuantityAvailable())
		assert.True(t, snap.Price.Equal(a.HighestBid()))
		assert.Equal(t, ends, a.EndsAt())
		assert.False(t, a.IsDue(t0))
		assert.True(t, a.IsDue(ends))
	})

	t.Run("rejects empty stock", func(t *testing.T) {
		_, err := auction.Open(snap, 0, snap.Price, ends, t0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("rejects an end in the past", func(t *testing.T) {
		_, err := auction.Open(snap, 1, snap.Price, t0, t0)
		assert.Error(t, err)
	})
}

func TestAuction_RecordBidAndExtend(t *testing.T) {
	snap := builder.NewListingBuilder().BuildSnapshot()
	a, err := auction.Open(snap, 10, decimal.NewFromInt(100), t0.Add(4*time.Hour), t0)
	require.NoError(t, err)

	a.RecordBid(decimal.NewFromInt(90))
	assert.True(t, decimal.NewFromInt(100).Equal(a.HighestBid()))
	a.RecordBid(decimal.NewFromInt(120))
	assert.True(t, decimal.NewFromInt(120).Equal(a.HighestBid()))

	next := t0.Add(8 * time.Hour)
	require.NoError(t, a.Extend(6, next))
	assert.Equal(t, 6, a.QuantityAvailable())
	assert.Equal(t, next, a.EndsAt())

	assert.Error(t, a.Extend(7, next.Add(time.Hour)), "cannot grow stock")
	assert.Error(t, a.Extend(3, next), "end must move forward")
}

func TestNewPlacement(t *testing.T) {
	bidder := builder.NewShopper("bidder@example.com")
	id := uuid.New()

	cases := []struct {
		name  string
		who   shopper.Shopper
		price decimal.Decimal
		qty   int
		errIs error
	}{
		{name: "valid", who: bidder, price: decimal.NewFromInt(5), qty: 1},
		{name: "guest", who: shopper.Guest(), price: decimal.NewFromInt(5), qty: 1, errIs: errs.ErrUnauthenticated},
		{name: "zero price", who: bidder, price: decimal.Zero, qty: 1, errIs: errs.ErrInvalidPrice},
		{name: "zero quantity", who: bidder, price: decimal.NewFromInt(5), qty: 0, errIs: errs.ErrInvalidQuantity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := auction.NewPlacement(id, c.who, c.price, c.qty, t0)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, auction.BidOpen, p.Status())
			assert.Equal(t, id, p.AuctionID())
		})
	}
}

func TestSchedule(t *testing.T) {
	t.Run("ceil keeps on-the-hour times", func(t *testing.T) {
		assert.Equal(t, t0, auction.CeilToHour(t0))
	})
	t.Run("ceil rounds up", func(t *testing.T) {
		assert.Equal(t, t0.Add(time.Hour), auction.CeilToHour(t0.Add(time.Minute)))
	})
	t.Run("end after checkout at 10:20 with a 4h window", func(t *testing.T) {
		assert.Equal(t, t0.Add(5*time.Hour), auction.EndAfter(t0.Add(20*time.Minute), 4*time.Hour))
	})
	t.Run("tick truncates", func(t *testing.T) {
		assert.Equal(t, t0, auction.TickOf(t0.Add(59*time.Minute), time.Hour))
	})
}
