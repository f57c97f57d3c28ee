package readstore

import (
	"context"

	"cellar-market/internal/infra"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"
	"cellar-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuctionViewQueries interface {
	GetAuctionView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AuctionViewRow, error)
	ListAuctionViewsByCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuctionViewsByCategoryParams) ([]sqlc.AuctionViewRow, error)
}

type AuctionReadStore struct {
	queries AuctionViewQueries
	db      sqlc.DBTX
}

func NewAuctionReadStore(queries AuctionViewQueries, db sqlc.DBTX) *AuctionReadStore {
	return &AuctionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuctionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuctionView, error) {
	row, err := r.queries.GetAuctionView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get auction view by id", err)
	}
	return toAuctionView(row)
}

func (r *AuctionReadStore) ListByCategory(ctx context.Context, category string, limit, offset int32) ([]*queries.AuctionView, error) {
	rows, err := r.queries.ListAuctionViewsByCategory(ctx, r.db, sqlc.ListAuctionViewsByCategoryParams{
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions by category", err)
	}
	out := make([]*queries.AuctionView, 0, len(rows))
	for _, row := range rows {
		v, err := toAuctionView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toAuctionView(row sqlc.AuctionViewRow) (*queries.AuctionView, error) {
	listPrice, err := pgconv.DecimalFromNumeric(row.ListPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid auction list price", err)
	}
	highest, err := pgconv.DecimalFromNumeric(row.HighestBid)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid auction highest bid", err)
	}
	return &queries.AuctionView{
		ID:                row.ID,
		Category:          row.Category,
		Identity:          row.Identity,
		Country:           row.Country,
		Region:            row.Region,
		Variety:           row.Variety,
		Winery:            row.Winery,
		Year:              row.Year,
		ListPrice:         listPrice,
		QuantityAvailable: int(row.QuantityAvailable),
		HighestBid:        highest,
		OpenBids:          int(row.OpenBidCount),
		StartedAt:         pgconv.TimeFromPgtype(row.StartedAt),
		EndsAt:            pgconv.TimeFromPgtype(row.EndsAt),
	}, nil
}
