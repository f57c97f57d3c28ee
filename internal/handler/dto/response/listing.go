package response

import (
	"time"

	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ListingResponse struct {
	Category          string          `json:"category"`
	Identity          string          `json:"identity"`
	Country           string          `json:"country"`
	Region            string          `json:"region"`
	Variety           string          `json:"variety"`
	Winery            string          `json:"winery"`
	Year              string          `json:"year"`
	Price             decimal.Decimal `json:"price" swaggertype:"string"`
	QuantityAvailable int             `json:"quantity_available"`
	CreatedAt         time.Time       `json:"created_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		Category:          v.Category,
		Identity:          v.Identity,
		Country:           v.Country,
		Region:            v.Region,
		Variety:           v.Variety,
		Winery:            v.Winery,
		Year:              v.Year,
		Price:             v.Price,
		QuantityAvailable: v.QuantityAvailable,
		CreatedAt:         v.CreatedAt,
	}
}

func FromListingViews(vs []*queries.ListingView) []*ListingResponse {
	res := make([]*ListingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromListingView(v)
	}
	return res
}

type CreateListingResponse struct {
	Category          string `json:"category"`
	Identity          string `json:"identity"`
	QuantityAvailable int    `json:"quantity_available"`
}

func FromCreateListingResult(r *commands.CreateListingResult) *CreateListingResponse {
	return &CreateListingResponse{
		Category:          r.Category,
		Identity:          r.Identity.String(),
		QuantityAvailable: r.QuantityAvailable,
	}
}
