package auction

import (
	"time"

	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidOpen   BidStatus = "open"
	BidWon    BidStatus = "won"
	BidOutbid BidStatus = "outbid"
)

// Placement is one entry in the bid ledger. Only clearing changes its status.
type Placement struct {
	id        uuid.UUID
	auctionID uuid.UUID
	bidder    shopper.Shopper
	price     decimal.Decimal
	quantity  int
	placedAt  time.Time
	status    BidStatus
}

func NewPlacement(auctionID uuid.UUID, bidder shopper.Shopper, price decimal.Decimal, quantity int, now time.Time) (*Placement, error) {
	if err := bidder.Require(); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, errs.ErrInvalidPrice
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	return &Placement{
		id:        uuid.New(),
		auctionID: auctionID,
		bidder:    bidder,
		price:     price,
		quantity:  quantity,
		placedAt:  now,
		status:    BidOpen,
	}, nil
}

func ReconstructPlacement(id, auctionID uuid.UUID, bidder shopper.Shopper, price decimal.Decimal, quantity int, placedAt time.Time, status BidStatus) *Placement {
	return &Placement{
		id:        id,
		auctionID: auctionID,
		bidder:    bidder,
		price:     price,
		quantity:  quantity,
		placedAt:  placedAt,
		status:    status,
	}
}

func (p *Placement) ID() uuid.UUID           { return p.id }
func (p *Placement) AuctionID() uuid.UUID    { return p.auctionID }
func (p *Placement) Bidder() shopper.Shopper { return p.bidder }
func (p *Placement) Price() decimal.Decimal  { return p.price }
func (p *Placement) Quantity() int           { return p.quantity }
func (p *Placement) PlacedAt() time.Time     { return p.placedAt }
func (p *Placement) Status() BidStatus       { return p.status }
