package readstore

import (
	"context"

	"cellar-market/internal/infra"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"
	"cellar-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartViewQueries interface {
	ListCartLinesByShopper(ctx context.Context, db sqlc.DBTX, shopperID uuid.UUID) ([]sqlc.CartLines, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) ListByShopper(ctx context.Context, shopperID uuid.UUID) ([]*queries.CartLineView, error) {
	rows, err := r.queries.ListCartLinesByShopper(ctx, r.db, shopperID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	out := make([]*queries.CartLineView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid cart line price", err)
		}
		out = append(out, &queries.CartLineView{
			ID:       row.ID,
			Category: row.Category,
			Identity: row.Identity,
			Country:  row.Country,
			Region:   row.Region,
			Variety:  row.Variety,
			Winery:   row.Winery,
			Year:     row.Year,
			Price:    price,
			Quantity: int(row.Quantity),
			Subtotal: price.Mul(decimal.NewFromInt(int64(row.Quantity))),
			AddedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
