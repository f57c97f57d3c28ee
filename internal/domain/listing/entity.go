package listing

import (
	"time"

	"cellar-market/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Listing struct {
	category          string
	identity          Identity
	wine              Wine
	price             decimal.Decimal
	quantityAvailable int
	createdAt         time.Time
}

func NewListing(category string, wine Wine, price decimal.Decimal, quantity int, now time.Time) (*Listing, error) {
	c, err := NormalizeCategory(category)
	if err != nil {
		return nil, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}

	return &Listing{
		category:          c,
		identity:          ComputeIdentity(wine, p),
		wine:              wine,
		price:             p,
		quantityAvailable: quantity,
		createdAt:         now,
	}, nil
}

func ReconstructListing(category string, identity Identity, wine Wine, price decimal.Decimal, quantityAvailable int, createdAt time.Time) *Listing {
	return &Listing{
		category:          category,
		identity:          identity,
		wine:              wine,
		price:             price,
		quantityAvailable: quantityAvailable,
		createdAt:         createdAt,
	}
}

func (l *Listing) Category() string         { return l.category }
func (l *Listing) Identity() Identity       { return l.identity }
func (l *Listing) Wine() Wine               { return l.wine }
func (l *Listing) Price() decimal.Decimal   { return l.price }
func (l *Listing) QuantityAvailable() int   { return l.quantityAvailable }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) Covers(quantity int) bool { return quantity <= l.quantityAvailable }
func (l *Listing) IsSoldOut() bool          { return l.quantityAvailable == 0 }

// Decrement removes sold units. It never drives the quantity negative.
func (l *Listing) Decrement(quantity int) error {
	if quantity <= 0 {
		return errs.ErrInvalidQuantity
	}
	if !l.Covers(quantity) {
		return errs.ErrInsufficientStock
	}
	l.quantityAvailable -= quantity
	return nil
}

func (l *Listing) Snapshot() Snapshot {
	s := SnapshotOf(l.category, l.wine, l.price)
	s.Identity = l.identity
	return s
}
