package readstore

import (
	"context"
	"time"

	"cellar-market/internal/infra"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"
	"cellar-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseViewQueries interface {
	ListPurchasesByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPurchasesByBuyerFirstPageParams) ([]sqlc.Purchases, error)
	ListPurchasesByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPurchasesByBuyerKeysetParams) ([]sqlc.Purchases, error)
}

type PurchaseReadStore struct {
	queries PurchaseViewQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseViewQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.PurchaseView, error) {
	rows, err := r.queries.ListPurchasesByBuyerFirstPage(ctx, r.db, sqlc.ListPurchasesByBuyerFirstPageParams{
		BuyerID: buyerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get purchases first page", err)
	}
	return mapPurchaseRows(rows)
}

func (r *PurchaseReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PurchaseView, error) {
	rows, err := r.queries.ListPurchasesByBuyerKeyset(ctx, r.db, sqlc.ListPurchasesByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get purchases by keyset", err)
	}
	return mapPurchaseRows(rows)
}

func mapPurchaseRows(rows []sqlc.Purchases) ([]*queries.PurchaseView, error) {
	out := make([]*queries.PurchaseView, 0, len(rows))
	for _, row := range rows {
		listPrice, err := pgconv.DecimalFromNumeric(row.ListPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid purchase list price", err)
		}
		unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid purchase unit price", err)
		}
		out = append(out, &queries.PurchaseView{
			ID:        row.ID,
			Category:  row.Category,
			Identity:  row.Identity,
			Country:   row.Country,
			Region:    row.Region,
			Variety:   row.Variety,
			Winery:    row.Winery,
			Year:      row.Year,
			ListPrice: listPrice,
			UnitPrice: unitPrice,
			Quantity:  int(row.Quantity),
			Source:    row.Source,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
