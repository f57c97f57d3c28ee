//go:build unit

// Package fakeuow is an in-memory shared.UnitOfWork for use-case tests.
// Transactions are serialised by one mutex and roll back by restoring a
// copy of the state taken when they began.
package fakeuow

import (
	"context"
	"sort"
	"sync"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type listingKey struct {
	category string
	identity listing.Identity
}

type state struct {
	listings  map[listingKey]*listing.Listing
	cartLines map[uuid.UUID]*cart.Line
	purchases []*purchase.Purchase
	auctions  map[uuid.UUID]*auction.Auction
	bids      map[uuid.UUID]*auction.Placement
}

func newState() *state {
	return &state{
		listings:  map[listingKey]*listing.Listing{},
		cartLines: map[uuid.UUID]*cart.Line{},
		auctions:  map[uuid.UUID]*auction.Auction{},
		bids:      map[uuid.UUID]*auction.Placement{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.listings {
		c.listings[k] = cloneListing(v)
	}
	for k, v := range s.cartLines {
		c.cartLines[k] = cloneLine(v)
	}
	c.purchases = append([]*purchase.Purchase(nil), s.purchases...)
	for k, v := range s.auctions {
		c.auctions[k] = cloneAuction(v)
	}
	for k, v := range s.bids {
		c.bids[k] = withStatus(v, v.Status())
	}
	return c
}

// Store is the fake database. The zero value is not usable; call New.
type Store struct {
	mu        sync.Mutex
	st        *state
	failOps   map[string]error
	commits   int
	racedLine *cart.Line
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{st: newState(), failOps: map[string]error{}}
}

// FailOn makes every later call of op return err, e.g. "Purchases.Create".
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOps[op] = err
}

// RaceCartLine stores line just before the next CartLines.Create, as if a
// concurrent transaction had committed it between the lookup and the insert.
func (s *Store) RaceCartLine(line *cart.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.racedLine = cloneLine(line)
}

func (s *Store) fail(op string) error {
	return s.failOps[op]
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.clone()
	if err := fn(ctx, &fakeTx{s: s}); err != nil {
		s.st = saved
		return err
	}
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// Commits counts successful transactions.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Seeding and inspection

func (s *Store) SeedListing(l *listing.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.listings[listingKey{l.Category(), l.Identity()}] = cloneListing(l)
}

func (s *Store) SeedCartLine(line *cart.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.cartLines[line.ID()] = cloneLine(line)
}

func (s *Store) SeedAuction(a *auction.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.auctions[a.ID()] = cloneAuction(a)
}

func (s *Store) SeedBid(p *auction.Placement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bids[p.ID()] = withStatus(p, p.Status())
}

func (s *Store) Listing(category string, identity listing.Identity) (*listing.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.st.listings[listingKey{category, identity}]
	if !ok {
		return nil, false
	}
	return cloneListing(l), true
}

func (s *Store) ListingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.listings)
}

func (s *Store) CartLines(owner shopper.Shopper) []*cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.linesOf(owner)
}

func (s *Store) Purchases() []*purchase.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*purchase.Purchase(nil), s.st.purchases...)
}

func (s *Store) Auctions() []*auction.Auction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*auction.Auction, 0, len(s.st.auctions))
	for _, a := range s.st.auctions {
		out = append(out, cloneAuction(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt().Before(out[j].StartedAt()) })
	return out
}

func (s *Store) Auction(id uuid.UUID) (*auction.Auction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.auctions[id]
	if !ok {
		return nil, false
	}
	return cloneAuction(a), true
}

// Bids returns every placement of an auction in placement order.
func (s *Store) Bids(auctionID uuid.UUID) []*auction.Placement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.bidsOf(auctionID, func(*auction.Placement) bool { return true })
}

func (s *state) linesOf(owner shopper.Shopper) []*cart.Line {
	var out []*cart.Line
	for _, l := range s.cartLines {
		if l.Owner().ID() == owner.ID() {
			out = append(out, cloneLine(l))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

func (s *state) bidsOf(auctionID uuid.UUID, keep func(*auction.Placement) bool) []*auction.Placement {
	var out []*auction.Placement
	for _, b := range s.bids {
		if b.AuctionID() == auctionID && keep(b) {
			out = append(out, withStatus(b, b.Status()))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlacedAt().Equal(out[j].PlacedAt()) {
			return out[i].PlacedAt().Before(out[j].PlacedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

func cloneListing(l *listing.Listing) *listing.Listing {
	return listing.ReconstructListing(l.Category(), l.Identity(), l.Wine(), l.Price(), l.QuantityAvailable(), l.CreatedAt())
}

func cloneLine(l *cart.Line) *cart.Line {
	return cart.ReconstructLine(l.ID(), l.Owner(), l.Listing(), l.Quantity(), l.CreatedAt())
}

func cloneAuction(a *auction.Auction) *auction.Auction {
	return auction.ReconstructAuction(a.ID(), a.Listing(), a.QuantityAvailable(), a.HighestBid(), a.StartedAt(), a.EndsAt())
}

func withStatus(p *auction.Placement, status auction.BidStatus) *auction.Placement {
	return auction.ReconstructPlacement(p.ID(), p.AuctionID(), p.Bidder(), p.Price(), p.Quantity(), p.PlacedAt(), status)
}

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Listings() shared.ListingRepository   { return &listingRepo{s: t.s} }
func (t *fakeTx) CartLines() shared.CartRepository     { return &cartRepo{s: t.s} }
func (t *fakeTx) Purchases() shared.PurchaseRepository { return &purchaseRepo{s: t.s} }
func (t *fakeTx) Auctions() shared.AuctionRepository   { return &auctionRepo{s: t.s} }
func (t *fakeTx) Bids() shared.BidRepository           { return &bidRepo{s: t.s} }
func (t *fakeTx) Reads() shared.CommandReads           { return &reads{s: t.s} }
func (t *fakeTx) DB() sqlc.DBTX                        { return nil }

type reads struct {
	s    *Store
	lock bool
}

func (r *reads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) ListingByKey(_ context.Context, category string, identity listing.Identity) (*shared.ListingStock, error) {
	defer r.enter()()
	if err := r.s.fail("Reads.ListingByKey"); err != nil {
		return nil, err
	}
	l, ok := r.s.st.listings[listingKey{category, identity}]
	if !ok {
		return nil, errs.ErrNoSuchListing
	}
	return &shared.ListingStock{Listing: l.Snapshot(), QuantityAvailable: l.QuantityAvailable()}, nil
}

func (r *reads) CartLinesOf(_ context.Context, owner shopper.Shopper) ([]*cart.Line, error) {
	defer r.enter()()
	if err := r.s.fail("Reads.CartLinesOf"); err != nil {
		return nil, err
	}
	return r.s.st.linesOf(owner), nil
}

func (r *reads) DueAuctionIDs(_ context.Context, tick time.Time) ([]uuid.UUID, error) {
	defer r.enter()()
	if err := r.s.fail("Reads.DueAuctionIDs"); err != nil {
		return nil, err
	}
	var due []*auction.Auction
	for _, a := range r.s.st.auctions {
		if a.IsDue(tick) {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].EndsAt().Equal(due[j].EndsAt()) {
			return due[i].EndsAt().Before(due[j].EndsAt())
		}
		return due[i].ID().String() < due[j].ID().String()
	})
	ids := make([]uuid.UUID, len(due))
	for i, a := range due {
		ids[i] = a.ID()
	}
	return ids, nil
}
