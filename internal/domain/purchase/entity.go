package purchase

import (
	"time"

	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Source string

const (
	SourceCheckout Source = "checkout"
	SourceAuction  Source = "auction"
)

func (s Source) String() string { return string(s) }

// Purchase is an immutable record of units that changed hands.
type Purchase struct {
	id        uuid.UUID
	buyer     shopper.Shopper
	listing   listing.Snapshot
	quantity  int
	unitPrice decimal.Decimal
	source    Source
	createdAt time.Time
}

// NewCheckoutPurchase prices the purchase at the listing price.
func NewCheckoutPurchase(buyer shopper.Shopper, snap listing.Snapshot, quantity int, now time.Time) (*Purchase, error) {
	return newPurchase(buyer, snap, quantity, snap.Price, SourceCheckout, now)
}

// NewAuctionPurchase prices the purchase at the winning bid.
func NewAuctionPurchase(buyer shopper.Shopper, snap listing.Snapshot, quantity int, bidPrice decimal.Decimal, now time.Time) (*Purchase, error) {
	return newPurchase(buyer, snap, quantity, bidPrice, SourceAuction, now)
}

func newPurchase(buyer shopper.Shopper, snap listing.Snapshot, quantity int, unitPrice decimal.Decimal, source Source, now time.Time) (*Purchase, error) {
	if err := buyer.Require(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	if !unitPrice.IsPositive() {
		return nil, errs.ErrInvalidPrice
	}
	return &Purchase{
		id:        uuid.New(),
		buyer:     buyer,
		listing:   snap,
		quantity:  quantity,
		unitPrice: unitPrice,
		source:    source,
		createdAt: now,
	}, nil
}

func ReconstructPurchase(id uuid.UUID, buyer shopper.Shopper, snap listing.Snapshot, quantity int, unitPrice decimal.Decimal, source Source, createdAt time.Time) *Purchase {
	return &Purchase{
		id:        id,
		buyer:     buyer,
		listing:   snap,
		quantity:  quantity,
		unitPrice: unitPrice,
		source:    source,
		createdAt: createdAt,
	}
}

func (p *Purchase) ID() uuid.UUID              { return p.id }
func (p *Purchase) Buyer() shopper.Shopper     { return p.buyer }
func (p *Purchase) Listing() listing.Snapshot  { return p.listing }
func (p *Purchase) Quantity() int              { return p.quantity }
func (p *Purchase) UnitPrice() decimal.Decimal { return p.unitPrice }
func (p *Purchase) Source() Source             { return p.source }
func (p *Purchase) CreatedAt() time.Time       { return p.createdAt }
func (p *Purchase) Total() decimal.Decimal {
	return p.unitPrice.Mul(decimal.NewFromInt(int64(p.quantity)))
}
