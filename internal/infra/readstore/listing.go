package readstore

import (
	"context"

	"cellar-market/internal/infra"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"
	"cellar-market/internal/usecase/queries"
)

type ListingViewQueries interface {
	GetListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ListingKeyParams) (sqlc.Listings, error)
	ListListingsByCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsByCategoryParams) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingViewQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingViewQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByKey(ctx context.Context, category, identity string) (*queries.ListingView, error) {
	row, err := r.queries.GetListing(ctx, r.db, sqlc.ListingKeyParams{Category: category, Identity: identity})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing", err)
	}
	return toListingView(row)
}

func (r *ListingReadStore) ListByCategory(ctx context.Context, category string, limit, offset int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsByCategory(ctx, r.db, sqlc.ListListingsByCategoryParams{
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by category", err)
	}
	out := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		v, err := toListingView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toListingView(row sqlc.Listings) (*queries.ListingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing price", err)
	}
	return &queries.ListingView{
		Category:          row.Category,
		Identity:          row.Identity,
		Country:           row.Country,
		Region:            row.Region,
		Variety:           row.Variety,
		Winery:            row.Winery,
		Year:              row.Year,
		Price:             price,
		QuantityAvailable: int(row.QuantityAvailable),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
