package queries

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/mock_cart.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartReadStore interface {
	ListByShopper(ctx context.Context, shopperID uuid.UUID) ([]*CartLineView, error)
}

type CartQueries interface {
	View(ctx context.Context, shopperID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) View(ctx context.Context, shopperID uuid.UUID) (*CartView, error) {
	lines, err := q.store.ListByShopper(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	if lines == nil {
		lines = []*CartLineView{}
	}
	return &CartView{Lines: lines, TotalCost: total}, nil
}
