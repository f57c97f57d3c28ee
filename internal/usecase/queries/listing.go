package queries

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/queries/mock_listing.go -package=queriesmock

import (
	"context"
	"strings"

	"cellar-market/internal/infra"
)

type ListingReadStore interface {
	FindByKey(ctx context.Context, category, identity string) (*ListingView, error)
	ListByCategory(ctx context.Context, category string, limit, offset int32) ([]*ListingView, error)
}

type ListingQueries interface {
	Get(ctx context.Context, category, identity string) (*ListingView, error)
	// ListByCategory returns newest listings first. An empty category falls
	// back to the configured default.
	ListByCategory(ctx context.Context, category string, page Page) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	store           ListingReadStore
	defaultCategory string
}

func NewListingQueries(store ListingReadStore, defaultCategory string) ListingQueries {
	return &listingQueriesImpl{store: store, defaultCategory: defaultCategory}
}

func (q *listingQueriesImpl) Get(ctx context.Context, category, identity string) (*ListingView, error) {
	v, err := q.store.FindByKey(ctx, q.category(category), identity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *listingQueriesImpl) ListByCategory(ctx context.Context, category string, page Page) ([]*ListingView, error) {
	page = page.Normalize()
	return q.store.ListByCategory(ctx, q.category(category), int32(page.Limit), int32(page.Offset))
}

func (q *listingQueriesImpl) category(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return q.defaultCategory
	}
	return c
}
