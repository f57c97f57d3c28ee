//go:build unit || e2e

package builder

import (
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/shopper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidBuilder struct {
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	Email     string
	Price     decimal.Decimal
	Quantity  int
	PlacedAt  time.Time
}

func NewBidBuilder() *BidBuilder {
	return &BidBuilder{
		AuctionID: uuid.New(),
		BidderID:  uuid.New(),
		Email:     "bidder@example.com",
		Price:     decimal.NewFromInt(10),
		Quantity:  1,
		PlacedAt:  time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BidBuilder) With(mutate func(*BidBuilder)) *BidBuilder {
	mutate(b)
	return b
}

func (b *BidBuilder) Build() (*auction.Placement, error) {
	bidder, err := shopper.New(b.BidderID, b.Email)
	if err != nil {
		return nil, err
	}
	return auction.NewPlacement(b.AuctionID, bidder, b.Price, b.Quantity, b.PlacedAt)
}

func (b *BidBuilder) MustBuild() *auction.Placement {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *BidBuilder) WithPrice(price int64) *BidBuilder {
	b.Price = decimal.NewFromInt(price)
	return b
}

func (b *BidBuilder) WithQuantity(quantity int) *BidBuilder {
	b.Quantity = quantity
	return b
}

func (b *BidBuilder) WithEmail(email string) *BidBuilder {
	b.Email = email
	return b
}

func (b *BidBuilder) WithPlacedAt(t time.Time) *BidBuilder {
	b.PlacedAt = t
	return b
}
