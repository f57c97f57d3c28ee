package shared

import (
	"context"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	CartLines() CartRepository
	Purchases() PurchaseRepository
	Auctions() AuctionRepository
	Bids() BidRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByKey(ctx context.Context, category string, identity listing.Identity) (*ListingStock, error)
	CartLinesOf(ctx context.Context, owner shopper.Shopper) ([]*cart.Line, error)
	DueAuctionIDs(ctx context.Context, tick time.Time) ([]uuid.UUID, error)
}

// ListingStock is what commands need to know about a listing without
// locking it.
type ListingStock struct {
	Listing           listing.Snapshot
	QuantityAvailable int
}

// ListingRepository lookups report a missing listing as errs.ErrNoSuchListing.
type ListingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (*listing.Listing, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, category string, identity listing.Identity) (*listing.Listing, error)
	SaveQuantity(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	Delete(ctx context.Context, tx sqlc.DBTX, category string, identity listing.Identity) error
}

type CartRepository interface {
	FindByIdentity(ctx context.Context, tx sqlc.DBTX, owner shopper.Shopper, identity listing.Identity) (*cart.Line, error)
	// Create fails with errs.ErrCartLineExists when the shopper already holds
	// a line for the same wine.
	Create(ctx context.Context, tx sqlc.DBTX, line *cart.Line) error
	UpdateQuantity(ctx context.Context, tx sqlc.DBTX, line *cart.Line) error
	// Delete reports false when the line was already gone.
	Delete(ctx context.Context, tx sqlc.DBTX, lineID uuid.UUID) (bool, error)
	DeleteByIdentity(ctx context.Context, tx sqlc.DBTX, owner shopper.Shopper, identity listing.Identity) (bool, error)
	DeleteAll(ctx context.Context, tx sqlc.DBTX, owner shopper.Shopper) (int, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error
}

type AuctionRepository interface {
	// CreateIfAbsent returns errs.ErrAuctionAlreadyOpen when the listing
	// already has an open auction.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, a *auction.Auction) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*auction.Auction, error)
	UpdateHighestBid(ctx context.Context, tx sqlc.DBTX, a *auction.Auction) error
	SaveExtension(ctx context.Context, tx sqlc.DBTX, a *auction.Auction) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BidRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *auction.Placement) error
	ListOpen(ctx context.Context, tx sqlc.DBTX, auctionID uuid.UUID) ([]*auction.Placement, error)
	MarkStatus(ctx context.Context, tx sqlc.DBTX, bidID uuid.UUID, status auction.BidStatus) error
}

// OnceStore claims a key for ttl. Claim reports false when the key is
// already held.
type OnceStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type WinnerNotifier interface {
	NotifyWinner(ctx context.Context, email, subject, body string) error
}
