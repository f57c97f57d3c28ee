package queries

import (
	"time"

	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrListingNotFound = errs.New("listing not found")
	ErrAuctionNotFound = errs.New("auction not found")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

// ListingView represents read-optimized listing data
type ListingView struct {
	Category          string          `json:"category"`
	Identity          string          `json:"identity"`
	Country           string          `json:"country"`
	Region            string          `json:"region"`
	Variety           string          `json:"variety"`
	Winery            string          `json:"winery"`
	Year              string          `json:"year"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available"`
	CreatedAt         time.Time       `json:"created_at"`
}

type CartLineView struct {
	ID       uuid.UUID       `json:"id"`
	Category string          `json:"category"`
	Identity string          `json:"identity"`
	Country  string          `json:"country"`
	Region   string          `json:"region"`
	Variety  string          `json:"variety"`
	Winery   string          `json:"winery"`
	Year     string          `json:"year"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	AddedAt  time.Time       `json:"added_at"`
}

// CartView lists lines in the order they were added.
type CartView struct {
	Lines     []*CartLineView `json:"lines"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

type PurchaseView struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Identity  string          `json:"identity"`
	Country   string          `json:"country"`
	Region    string          `json:"region"`
	Variety   string          `json:"variety"`
	Winery    string          `json:"winery"`
	Year      string          `json:"year"`
	ListPrice decimal.Decimal `json:"list_price"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuctionView struct {
	ID                uuid.UUID       `json:"id"`
	Category          string          `json:"category"`
	Identity          string          `json:"identity"`
	Country           string          `json:"country"`
	Region            string          `json:"region"`
	Variety           string          `json:"variety"`
	Winery            string          `json:"winery"`
	Year              string          `json:"year"`
	ListPrice         decimal.Decimal `json:"list_price"`
	QuantityAvailable int             `json:"quantity_available"`
	HighestBid        decimal.Decimal `json:"highest_bid"`
	OpenBids          int             `json:"open_bids"`
	StartedAt         time.Time       `json:"started_at"`
	EndsAt            time.Time       `json:"ends_at"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page bounds offset-paginated lists.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) Normalize() Page {
	p.Limit = ClampLimit(p.Limit)
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
