package response

import (
	"time"

	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PurchaseResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Identity  string          `json:"identity"`
	Country   string          `json:"country"`
	Region    string          `json:"region"`
	Variety   string          `json:"variety"`
	Winery    string          `json:"winery"`
	Year      string          `json:"year"`
	ListPrice decimal.Decimal `json:"list_price" swaggertype:"string"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total" swaggertype:"string"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	snap := p.Listing()
	return &PurchaseResponse{
		ID:        p.ID().String(),
		Category:  snap.Category,
		Identity:  snap.Identity.String(),
		Country:   snap.Country,
		Region:    snap.Region,
		Variety:   snap.Variety,
		Winery:    snap.Winery,
		Year:      snap.Year,
		ListPrice: snap.Price,
		UnitPrice: p.UnitPrice(),
		Quantity:  p.Quantity(),
		Total:     p.Total(),
		Source:    p.Source().String(),
		CreatedAt: p.CreatedAt(),
	}
}

func FromPurchases(ps []*purchase.Purchase) []*PurchaseResponse {
	res := make([]*PurchaseResponse, len(ps))
	for i, p := range ps {
		res[i] = FromPurchase(p)
	}
	return res
}

func FromPurchaseView(v *queries.PurchaseView) *PurchaseResponse {
	return &PurchaseResponse{
		ID:        v.ID.String(),
		Category:  v.Category,
		Identity:  v.Identity,
		Country:   v.Country,
		Region:    v.Region,
		Variety:   v.Variety,
		Winery:    v.Winery,
		Year:      v.Year,
		ListPrice: v.ListPrice,
		UnitPrice: v.UnitPrice,
		Quantity:  v.Quantity,
		Total:     v.UnitPrice.Mul(decimal.NewFromInt(int64(v.Quantity))),
		Source:    v.Source,
		CreatedAt: v.CreatedAt,
	}
}

type PurchasePageResponse struct {
	Items      []*PurchaseResponse `json:"items"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

func FromPurchasePage(vs []*queries.PurchaseView, next *queries.Cursor) *PurchasePageResponse {
	items := make([]*PurchaseResponse, len(vs))
	for i, v := range vs {
		items[i] = FromPurchaseView(v)
	}
	res := &PurchasePageResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CheckoutResponse struct {
	Purchases      []*PurchaseResponse `json:"purchases"`
	TotalCost      decimal.Decimal     `json:"total_cost" swaggertype:"string"`
	AuctionsOpened []string            `json:"auctions_opened"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	total := decimal.Zero
	for _, p := range r.Purchases {
		total = total.Add(p.Total())
	}
	opened := make([]string, len(r.AuctionsOpened))
	for i, id := range r.AuctionsOpened {
		opened[i] = id.String()
	}
	return &CheckoutResponse{
		Purchases:      FromPurchases(r.Purchases),
		TotalCost:      total,
		AuctionsOpened: opened,
	}
}

// InsufficientStockDetail is attached to a 409 checkout failure.
type InsufficientStockDetail struct {
	Identity  string              `json:"identity"`
	Requested int                 `json:"requested"`
	Available int                 `json:"available"`
	Settled   []*PurchaseResponse `json:"settled"`
}

func FromInsufficientStock(e *commands.InsufficientStockError) *InsufficientStockDetail {
	return &InsufficientStockDetail{
		Identity:  e.Line.Identity().String(),
		Requested: e.Line.Quantity(),
		Available: e.Available,
		Settled:   FromPurchases(e.Settled),
	}
}
