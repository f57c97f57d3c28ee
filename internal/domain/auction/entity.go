package auction

import (
	"time"

	"cellar-market/internal/domain/listing"
	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Auction holds the remaining stock of a listing that fell below its
// low-stock threshold. It is open for as long as it exists.
type Auction struct {
	id                uuid.UUID
	listing           listing.Snapshot
	quantityAvailable int
	highestBid        decimal.Decimal
	startedAt         time.Time
	endsAt            time.Time
}

func Open(snap listing.Snapshot, quantity int, initialHighBid decimal.Decimal, endsAt, now time.Time) (*Auction, error) {
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	if !initialHighBid.IsPositive() {
		return nil, errs.ErrInvalidPrice
	}
	if !endsAt.After(now) {
		return nil, errs.Newf("auction end %s must be after start %s", endsAt, now)
	}
	return &Auction{
		id:                uuid.New(),
		listing:           snap,
		quantityAvailable: quantity,
		highestBid:        initialHighBid,
		startedAt:         now,
		endsAt:            endsAt,
	}, nil
}

func ReconstructAuction(id uuid.UUID, snap listing.Snapshot, quantityAvailable int, highestBid decimal.Decimal, startedAt, endsAt time.Time) *Auction {
	return &Auction{
		id:                id,
		listing:           snap,
		quantityAvailable: quantityAvailable,
		highestBid:        highestBid,
		startedAt:         startedAt,
		endsAt:            endsAt,
	}
}

func (a *Auction) ID() uuid.UUID               { return a.id }
func (a *Auction) Listing() listing.Snapshot   { return a.listing }
func (a *Auction) QuantityAvailable() int      { return a.quantityAvailable }
func (a *Auction) HighestBid() decimal.Decimal { return a.highestBid }
func (a *Auction) StartedAt() time.Time        { return a.startedAt }
func (a *Auction) EndsAt() time.Time           { return a.endsAt }

// IsDue reports whether the auction should clear at tick.
func (a *Auction) IsDue(tick time.Time) bool {
	return !a.endsAt.After(tick)
}

// RecordBid raises the displayed high bid. It has no effect on allocation.
func (a *Auction) RecordBid(price decimal.Decimal) {
	if price.GreaterThan(a.highestBid) {
		a.highestBid = price
	}
}

// Extend keeps an under-subscribed auction open with what is left.
func (a *Auction) Extend(remaining int, endsAt time.Time) error {
	if remaining <= 0 || remaining > a.quantityAvailable {
		return errs.Newf("cannot extend auction %s with %d of %d units", a.id, remaining, a.quantityAvailable)
	}
	if !endsAt.After(a.endsAt) {
		return errs.Newf("extended end %s must be after %s", endsAt, a.endsAt)
	}
	a.quantityAvailable = remaining
	a.endsAt = endsAt
	return nil
}
