package response

import (
	"time"

	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Identity string          `json:"identity"`
	Country  string          `json:"country"`
	Region   string          `json:"region"`
	Variety  string          `json:"variety"`
	Winery   string          `json:"winery"`
	Year     string          `json:"year"`
	Price    decimal.Decimal `json:"price" swaggertype:"string"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string"`
	AddedAt  time.Time       `json:"added_at"`
}

type CartResponse struct {
	Lines     []*CartLineResponse `json:"lines"`
	TotalCost decimal.Decimal     `json:"total_cost" swaggertype:"string"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]*CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &CartLineResponse{
			ID:       l.ID.String(),
			Category: l.Category,
			Identity: l.Identity,
			Country:  l.Country,
			Region:   l.Region,
			Variety:  l.Variety,
			Winery:   l.Winery,
			Year:     l.Year,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal,
			AddedAt:  l.AddedAt,
		}
	}
	return &CartResponse{Lines: lines, TotalCost: v.TotalCost}
}

type AddToCartResponse struct {
	LineID   string `json:"line_id"`
	Identity string `json:"identity"`
	Quantity int    `json:"quantity"`
	Clamped  bool   `json:"clamped"`
}

func FromAddToCartResult(r *commands.AddToCartResult) *AddToCartResponse {
	return &AddToCartResponse{
		LineID:   r.LineID.String(),
		Identity: r.Identity.String(),
		Quantity: r.Quantity,
		Clamped:  r.Clamped,
	}
}
