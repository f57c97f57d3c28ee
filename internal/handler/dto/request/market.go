package request

import (
	"strings"

	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateListingRequest struct {
	Category string          `json:"category" binding:"max=64"`
	Country  string          `json:"country" binding:"required,max=128"`
	Region   string          `json:"region" binding:"required,max=128"`
	Variety  string          `json:"variety" binding:"required,max=128"`
	Winery   string          `json:"winery" binding:"required,max=128"`
	Year     string          `json:"year" binding:"required,max=16"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"24.50"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
}

func (r CreateListingRequest) ToInput(defaultCategory string) commands.CreateListingInput {
	return commands.CreateListingInput{
		WineInput: wineInput(r.Category, r.Country, r.Region, r.Variety, r.Winery, r.Year, r.Price, defaultCategory),
		Quantity:  r.Quantity,
	}
}

// AddToCartRequest names the listing by its descriptive fields. The server
// derives the identity from them.
type AddToCartRequest struct {
	Category string          `json:"category" binding:"max=64"`
	Country  string          `json:"country" binding:"required,max=128"`
	Region   string          `json:"region" binding:"required,max=128"`
	Variety  string          `json:"variety" binding:"required,max=128"`
	Winery   string          `json:"winery" binding:"required,max=128"`
	Year     string          `json:"year" binding:"required,max=16"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"24.50"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
}

func (r AddToCartRequest) ToWineInput(defaultCategory string) commands.WineInput {
	return wineInput(r.Category, r.Country, r.Region, r.Variety, r.Winery, r.Year, r.Price, defaultCategory)
}

type PlaceBidRequest struct {
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"18.00"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
}

func (r PlaceBidRequest) ToInput(auctionID uuid.UUID, idempotencyKey string) commands.PlaceBidInput {
	return commands.PlaceBidInput{
		AuctionID:      auctionID,
		Price:          r.Price,
		Quantity:       r.Quantity,
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}
}

type PageQuery struct {
	Category string `form:"category"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

func (q PageQuery) Page() queries.Page {
	return queries.Page{Limit: q.Limit, Offset: q.Offset}
}

type CursorQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q CursorQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func wineInput(category, country, region, variety, winery, year string, price decimal.Decimal, defaultCategory string) commands.WineInput {
	if strings.TrimSpace(category) == "" {
		category = defaultCategory
	}
	return commands.WineInput{
		Category: category,
		Country:  country,
		Region:   region,
		Variety:  variety,
		Winery:   winery,
		Year:     year,
		Price:    price,
	}
}
