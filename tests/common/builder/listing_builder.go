//go:build unit || e2e

package builder

import (
	"time"

	"cellar-market/internal/domain/listing"
	reqdto "cellar-market/internal/handler/dto/request"
	"cellar-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	Category  string
	Country   string
	Region    string
	Variety   string
	Winery    string
	Year      string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		Category:  "red",
		Country:   "France",
		Region:    "Bordeaux",
		Variety:   "Merlot",
		Winery:    "Chateau Test",
		Year:      "2015",
		Price:     decimal.NewFromInt(100),
		Quantity:  30,
		CreatedAt: time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ListingBuilder) BuildWine() (listing.Wine, error) {
	return listing.NewWine(b.Country, b.Region, b.Variety, b.Winery, b.Year)
}

func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	w, err := b.BuildWine()
	if err != nil {
		return nil, err
	}
	return listing.NewListing(b.Category, w, b.Price, b.Quantity, b.CreatedAt)
}

func (b *ListingBuilder) MustBuildDomain() *listing.Listing {
	l, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return l
}

func (b *ListingBuilder) BuildSnapshot() listing.Snapshot {
	s, err := listing.NewSnapshot(b.Category, b.Country, b.Region, b.Variety, b.Winery, b.Year, b.Price)
	if err != nil {
		panic(err)
	}
	return s
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Category: b.Category,
		Country:  b.Country,
		Region:   b.Region,
		Variety:  b.Variety,
		Winery:   b.Winery,
		Year:     b.Year,
		Price:    b.Price,
		Quantity: b.Quantity,
	}
}

func (b *ListingBuilder) BuildAddToCartRequestDTO(quantity int) reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{
		Category: b.Category,
		Country:  b.Country,
		Region:   b.Region,
		Variety:  b.Variety,
		Winery:   b.Winery,
		Year:     b.Year,
		Price:    b.Price,
		Quantity: quantity,
	}
}

func (b *ListingBuilder) BuildViewQuery() *queries.ListingView {
	snap := b.BuildSnapshot()
	return &queries.ListingView{
		Category:          snap.Category,
		Identity:          snap.Identity.String(),
		Country:           b.Country,
		Region:            b.Region,
		Variety:           b.Variety,
		Winery:            b.Winery,
		Year:              b.Year,
		Price:             b.Price,
		QuantityAvailable: b.Quantity,
		CreatedAt:         b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithCategory(category string) *ListingBuilder {
	b.Category = category
	return b
}

func (b *ListingBuilder) WithWinery(winery string) *ListingBuilder {
	b.Winery = winery
	return b
}

func (b *ListingBuilder) WithYear(year string) *ListingBuilder {
	b.Year = year
	return b
}

func (b *ListingBuilder) WithPrice(price decimal.Decimal) *ListingBuilder {
	b.Price = price
	return b
}

func (b *ListingBuilder) WithQuantity(quantity int) *ListingBuilder {
	b.Quantity = quantity
	return b
}

func (b *ListingBuilder) WithCreatedAt(t time.Time) *ListingBuilder {
	b.CreatedAt = t
	return b
}
