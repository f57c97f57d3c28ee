package queries

//go:generate mockgen -source=auction.go -destination=../../../tests/mock/queries/mock_auction.go -package=queriesmock

import (
	"context"
	"strings"

	"cellar-market/internal/infra"

	"github.com/google/uuid"
)

type AuctionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	ListByCategory(ctx context.Context, category string, limit, offset int32) ([]*AuctionView, error)
}

type AuctionQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	// ListOpen returns auctions closest to clearing first.
	ListOpen(ctx context.Context, category string, page Page) ([]*AuctionView, error)
}

type auctionQueriesImpl struct {
	store           AuctionReadStore
	defaultCategory string
}

func NewAuctionQueries(store AuctionReadStore, defaultCategory string) AuctionQueries {
	return &auctionQueriesImpl{store: store, defaultCategory: defaultCategory}
}

func (q *auctionQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*AuctionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *auctionQueriesImpl) ListOpen(ctx context.Context, category string, page Page) ([]*AuctionView, error) {
	page = page.Normalize()
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		c = q.defaultCategory
	}
	return q.store.ListByCategory(ctx, c, int32(page.Limit), int32(page.Offset))
}
