//go:build unit

package fakeuow

import (
	"context"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type listingRepo struct{ s *Store }

func (r *listingRepo) Upsert(_ context.Context, _ sqlc.DBTX, l *listing.Listing) (*listing.Listing, error) {
	if err := r.s.fail("Listings.Upsert"); err != nil {
		return nil, err
	}
	k := listingKey{l.Category(), l.Identity()}
	if cur, ok := r.s.st.listings[k]; ok {
		merged := listing.ReconstructListing(cur.Category(), cur.Identity(), cur.Wine(), cur.Price(),
			cur.QuantityAvailable()+l.QuantityAvailable(), cur.CreatedAt())
		r.s.st.listings[k] = merged
		return cloneListing(merged), nil
	}
	r.s.st.listings[k] = cloneListing(l)
	return cloneListing(l), nil
}

func (r *listingRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, category string, identity listing.Identity) (*listing.Listing, error) {
	if err := r.s.fail("Listings.FindForUpdate"); err != nil {
		return nil, err
	}
	l, ok := r.s.st.listings[listingKey{category, identity}]
	if !ok {
		return nil, errs.ErrNoSuchListing
	}
	return cloneListing(l), nil
}

func (r *listingRepo) SaveQuantity(_ context.Context, _ sqlc.DBTX, l *listing.Listing) error {
	if err := r.s.fail("Listings.SaveQuantity"); err != nil {
		return err
	}
	k := listingKey{l.Category(), l.Identity()}
	if _, ok := r.s.st.listings[k]; !ok {
		return errs.ErrNoSuchListing
	}
	r.s.st.listings[k] = cloneListing(l)
	return nil
}

func (r *listingRepo) Delete(_ context.Context, _ sqlc.DBTX, category string, identity listing.Identity) error {
	if err := r.s.fail("Listings.Delete"); err != nil {
		return err
	}
	delete(r.s.st.listings, listingKey{category, identity})
	return nil
}

type cartRepo struct{ s *Store }

func (r *cartRepo) FindByIdentity(_ context.Context, _ sqlc.DBTX, owner shopper.Shopper, identity listing.Identity) (*cart.Line, error) {
	for _, l := range r.s.st.cartLines {
		if l.Owner().ID() == owner.ID() && l.Identity() == identity {
			return cloneLine(l), nil
		}
	}
	return nil, errs.ErrCartLineNotFound
}

func (r *cartRepo) Create(_ context.Context, _ sqlc.DBTX, line *cart.Line) error {
	if err := r.s.fail("CartLines.Create"); err != nil {
		return err
	}
	if raced := r.s.racedLine; raced != nil {
		r.s.racedLine = nil
		r.s.st.cartLines[raced.ID()] = cloneLine(raced)
	}
	for _, l := range r.s.st.cartLines {
		if l.Owner().ID() == line.Owner().ID() && l.Identity() == line.Identity() {
			return errs.ErrCartLineExists
		}
	}
	r.s.st.cartLines[line.ID()] = cloneLine(line)
	return nil
}

func (r *cartRepo) UpdateQuantity(_ context.Context, _ sqlc.DBTX, line *cart.Line) error {
	if _, ok := r.s.st.cartLines[line.ID()]; !ok {
		return errs.ErrCartLineNotFound
	}
	r.s.st.cartLines[line.ID()] = cloneLine(line)
	return nil
}

func (r *cartRepo) Delete(_ context.Context, _ sqlc.DBTX, lineID uuid.UUID) (bool, error) {
	if _, ok := r.s.st.cartLines[lineID]; !ok {
		return false, nil
	}
	delete(r.s.st.cartLines, lineID)
	return true, nil
}

func (r *cartRepo) DeleteByIdentity(_ context.Context, _ sqlc.DBTX, owner shopper.Shopper, identity listing.Identity) (bool, error) {
	for id, l := range r.s.st.cartLines {
		if l.Owner().ID() == owner.ID() && l.Identity() == identity {
			delete(r.s.st.cartLines, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *cartRepo) DeleteAll(_ context.Context, _ sqlc.DBTX, owner shopper.Shopper) (int, error) {
	n := 0
	for id, l := range r.s.st.cartLines {
		if l.Owner().ID() == owner.ID() {
			delete(r.s.st.cartLines, id)
			n++
		}
	}
	return n, nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(_ context.Context, _ sqlc.DBTX, p *purchase.Purchase) error {
	if err := r.s.fail("Purchases.Create"); err != nil {
		return err
	}
	r.s.st.purchases = append(r.s.st.purchases, p)
	return nil
}

type auctionRepo struct{ s *Store }

func (r *auctionRepo) CreateIfAbsent(_ context.Context, _ sqlc.DBTX, a *auction.Auction) error {
	for _, cur := range r.s.st.auctions {
		if cur.Listing().Category == a.Listing().Category && cur.Listing().Identity == a.Listing().Identity {
			return errs.ErrAuctionAlreadyOpen
		}
	}
	r.s.st.auctions[a.ID()] = cloneAuction(a)
	return nil
}

func (r *auctionRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*auction.Auction, error) {
	if err := r.s.fail("Auctions.FindForUpdate"); err != nil {
		return nil, err
	}
	a, ok := r.s.st.auctions[id]
	if !ok {
		return nil, errs.ErrAuctionNotFound
	}
	return cloneAuction(a), nil
}

func (r *auctionRepo) UpdateHighestBid(_ context.Context, _ sqlc.DBTX, a *auction.Auction) error {
	cur, ok := r.s.st.auctions[a.ID()]
	if !ok {
		return errs.ErrAuctionNotFound
	}
	r.s.st.auctions[a.ID()] = auction.ReconstructAuction(cur.ID(), cur.Listing(), cur.QuantityAvailable(), a.HighestBid(), cur.StartedAt(), cur.EndsAt())
	return nil
}

func (r *auctionRepo) SaveExtension(_ context.Context, _ sqlc.DBTX, a *auction.Auction) error {
	cur, ok := r.s.st.auctions[a.ID()]
	if !ok {
		return errs.ErrAuctionNotFound
	}
	r.s.st.auctions[a.ID()] = auction.ReconstructAuction(cur.ID(), cur.Listing(), a.QuantityAvailable(), cur.HighestBid(), cur.StartedAt(), a.EndsAt())
	return nil
}

func (r *auctionRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	delete(r.s.st.auctions, id)
	return nil
}

type bidRepo struct{ s *Store }

func (r *bidRepo) Create(_ context.Context, _ sqlc.DBTX, p *auction.Placement) error {
	if err := r.s.fail("Bids.Create"); err != nil {
		return err
	}
	r.s.st.bids[p.ID()] = withStatus(p, p.Status())
	return nil
}

func (r *bidRepo) ListOpen(_ context.Context, _ sqlc.DBTX, auctionID uuid.UUID) ([]*auction.Placement, error) {
	return r.s.st.bidsOf(auctionID, func(p *auction.Placement) bool { return p.Status() == auction.BidOpen }), nil
}

func (r *bidRepo) MarkStatus(_ context.Context, _ sqlc.DBTX, bidID uuid.UUID, status auction.BidStatus) error {
	p, ok := r.s.st.bids[bidID]
	if !ok {
		return errs.New("bid not found")
	}
	r.s.st.bids[bidID] = withStatus(p, status)
	return nil
}
