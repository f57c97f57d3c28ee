package auction

import (
	"sort"
)

type BidOrder string

const (
	// OrderDescending awards the highest bids first.
	OrderDescending BidOrder = "descending"
	// OrderAscending walks bids from the lowest price up.
	OrderAscending BidOrder = "ascending"
)

// Fill is the quantity awarded to one bid. The boundary bid may be filled
// for less than it asked.
type Fill struct {
	Bid      *Placement
	Quantity int
}

type Allocation struct {
	Winners   []Fill
	Losers    []*Placement
	Allocated int
	Remaining int
}

// FullyAllocated reports whether every available unit found a bidder.
func (a Allocation) FullyAllocated() bool {
	return a.Remaining == 0
}

// RankBids orders bids by price in the given direction. Equal prices keep
// placement order, then id order.
func RankBids(bids []*Placement, order BidOrder) []*Placement {
	ranked := make([]*Placement, len(bids))
	copy(ranked, bids)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if c := a.price.Cmp(b.price); c != 0 {
			if order == OrderAscending {
				return c < 0
			}
			return c > 0
		}
		if !a.placedAt.Equal(b.placedAt) {
			return a.placedAt.Before(b.placedAt)
		}
		return a.id.String() < b.id.String()
	})
	return ranked
}

// Allocate walks the ranked bids and hands out at most available units.
// The bid that crosses the limit is partially filled so the total matches
// available exactly; bids after it get nothing.
func Allocate(bids []*Placement, available int, order BidOrder) Allocation {
	var out Allocation
	for _, b := range RankBids(bids, order) {
		left := available - out.Allocated
		if left <= 0 {
			out.Losers = append(out.Losers, b)
			continue
		}
		qty := min(b.quantity, left)
		out.Winners = append(out.Winners, Fill{Bid: b, Quantity: qty})
		out.Allocated += qty
	}
	out.Remaining = available - out.Allocated
	return out
}
