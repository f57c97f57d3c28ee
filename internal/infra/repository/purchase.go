package repository

import (
	"context"

	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository/converter"
	"cellar-market/internal/infra/sqlc"
)

type PurchaseWriteQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) error
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error {
	params, err := converter.PurchaseToCreateParams(p)
	if err != nil {
		return infra.WrapRepoErr("invalid purchase", err, infra.KindConflict)
	}
	if err := r.queries.CreatePurchase(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}
