package repository

import (
	"context"

	"cellar-market/internal/domain/listing"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository/converter"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/pkg/pgconv"
)

type ListingWriteQueries interface {
	UpsertListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertListingParams) (sqlc.Listings, error)
	GetListingForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListingKeyParams) (sqlc.Listings, error)
	UpdateListingQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingQuantityParams) (int64, error)
	DeleteListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ListingKeyParams) (int64, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert adds the listing's quantity to an existing row with the same
// (category, identity) and returns the stored state.
func (r *ListingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (*listing.Listing, error) {
	params, err := converter.ListingToUpsertParams(l)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing", err, infra.KindConflict)
	}
	row, err := r.queries.UpsertListing(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert listing", err)
	}
	stored, err := converter.ListingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listing", err)
	}
	return stored, nil
}

func (r *ListingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, category string, identity listing.Identity) (*listing.Listing, error) {
	row, err := r.queries.GetListingForUpdate(ctx, tx, sqlc.ListingKeyParams{Category: category, Identity: identity.String()})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("listing not found", err, infra.KindNotFound), errs.ErrNoSuchListing)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}
	l, err := converter.ListingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listing", err)
	}
	return l, nil
}

func (r *ListingRepository) SaveQuantity(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	qty, err := converter.Int32(l.QuantityAvailable())
	if err != nil {
		return infra.WrapRepoErr("invalid listing quantity", err, infra.KindConflict)
	}
	n, err := r.queries.UpdateListingQuantity(ctx, tx, sqlc.UpdateListingQuantityParams{
		Category:          l.Category(),
		Identity:          l.Identity().String(),
		QuantityAvailable: qty,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update listing quantity", err)
	}
	if n == 0 {
		return errs.Mark(infra.WrapRepoErr("listing not found", nil, infra.KindNotFound), errs.ErrNoSuchListing)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, tx sqlc.DBTX, category string, identity listing.Identity) error {
	if _, err := r.queries.DeleteListing(ctx, tx, sqlc.ListingKeyParams{Category: category, Identity: identity.String()}); err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	return nil
}
