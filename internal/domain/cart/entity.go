package cart

import (
	"time"

	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one shopper's intent to buy a quantity of a listing. Lines reserve
// nothing; stock is checked again at checkout.
type Line struct {
	id        uuid.UUID
	owner     shopper.Shopper
	listing   listing.Snapshot
	quantity  int
	createdAt time.Time
}

func NewLine(owner shopper.Shopper, snap listing.Snapshot, quantity int, now time.Time) (*Line, error) {
	if err := owner.Require(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	return &Line{
		id:        uuid.New(),
		owner:     owner,
		listing:   snap,
		quantity:  quantity,
		createdAt: now,
	}, nil
}

func ReconstructLine(id uuid.UUID, owner shopper.Shopper, snap listing.Snapshot, quantity int, createdAt time.Time) *Line {
	return &Line{
		id:        id,
		owner:     owner,
		listing:   snap,
		quantity:  quantity,
		createdAt: createdAt,
	}
}

func (l *Line) ID() uuid.UUID              { return l.id }
func (l *Line) Owner() shopper.Shopper     { return l.owner }
func (l *Line) Listing() listing.Snapshot  { return l.listing }
func (l *Line) Identity() listing.Identity { return l.listing.Identity }
func (l *Line) Quantity() int              { return l.quantity }
func (l *Line) CreatedAt() time.Time       { return l.createdAt }

func (l *Line) Subtotal() decimal.Decimal {
	return l.listing.Price.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Merge adds requested units, clamped to what the listing currently holds.
// It reports whether the clamp kicked in.
func (l *Line) Merge(requested, available int) (bool, error) {
	if requested <= 0 {
		return false, errs.ErrInvalidQuantity
	}
	if available <= 0 {
		return false, errs.ErrNoSuchListing
	}
	want := l.quantity + requested
	if want > available {
		l.quantity = available
		return true, nil
	}
	l.quantity = want
	return false, nil
}

// Total sums price times quantity over lines.
func Total(lines []*Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
