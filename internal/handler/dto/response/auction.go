package response

import (
	"time"

	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID                string          `json:"id"`
	Category          string          `json:"category"`
	Identity          string          `json:"identity"`
	Country           string          `json:"country"`
	Region            string          `json:"region"`
	Variety           string          `json:"variety"`
	Winery            string          `json:"winery"`
	Year              string          `json:"year"`
	ListPrice         decimal.Decimal `json:"list_price" swaggertype:"string"`
	QuantityAvailable int             `json:"quantity_available"`
	HighestBid        decimal.Decimal `json:"highest_bid" swaggertype:"string"`
	OpenBids          int             `json:"open_bids"`
	StartedAt         time.Time       `json:"started_at"`
	EndsAt            time.Time       `json:"ends_at"`
}

func FromAuctionView(v *queries.AuctionView) *AuctionResponse {
	return &AuctionResponse{
		ID:                v.ID.String(),
		Category:          v.Category,
		Identity:          v.Identity,
		Country:           v.Country,
		Region:            v.Region,
		Variety:           v.Variety,
		Winery:            v.Winery,
		Year:              v.Year,
		ListPrice:         v.ListPrice,
		QuantityAvailable: v.QuantityAvailable,
		HighestBid:        v.HighestBid,
		OpenBids:          v.OpenBids,
		StartedAt:         v.StartedAt,
		EndsAt:            v.EndsAt,
	}
}

func FromAuctionViews(vs []*queries.AuctionView) []*AuctionResponse {
	res := make([]*AuctionResponse, len(vs))
	for i, v := range vs {
		res[i] = FromAuctionView(v)
	}
	return res
}

type BidResponse struct {
	BidID      string          `json:"bid_id"`
	AuctionID  string          `json:"auction_id"`
	HighestBid decimal.Decimal `json:"highest_bid" swaggertype:"string"`
	PlacedAt   time.Time       `json:"placed_at"`
}

func FromPlaceBidResult(r *commands.PlaceBidResult) *BidResponse {
	return &BidResponse{
		BidID:      r.BidID.String(),
		AuctionID:  r.AuctionID.String(),
		HighestBid: r.HighestBid,
		PlacedAt:   r.PlacedAt,
	}
}

type ClearingReportResponse struct {
	Tick      time.Time           `json:"tick"`
	Skipped   bool                `json:"skipped"`
	Cleared   int                 `json:"cleared"`
	Extended  int                 `json:"extended"`
	Closed    int                 `json:"closed"`
	Purchases []*PurchaseResponse `json:"purchases"`
	Warnings  []string            `json:"warnings"`
}

func FromClearingReport(r *commands.ClearingReport) *ClearingReportResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &ClearingReportResponse{
		Tick:      r.Tick,
		Skipped:   r.Skipped,
		Cleared:   r.Cleared,
		Extended:  r.Extended,
		Closed:    r.Closed,
		Purchases: FromPurchases(r.Purchases),
		Warnings:  warnings,
	}
}
