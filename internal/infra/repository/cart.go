package repository

import (
	"context"

	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository/converter"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	GetCartLineByIdentity(ctx context.Context, db sqlc.DBTX, arg sqlc.CartLineKeyParams) (sqlc.CartLines, error)
	CreateCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCartLineParams) (int64, error)
	UpdateCartLineQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartLineQuantityParams) error
	DeleteCartLine(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteCartLineByIdentity(ctx context.Context, db sqlc.DBTX, arg sqlc.CartLineKeyParams) (int64, error)
	DeleteCartLinesByShopper(ctx context.Context, db sqlc.DBTX, shopperID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) FindByIdentity(ctx context.Context, tx sqlc.DBTX, owner shopper.Shopper, identity listing.Identity) (*cart.Line, error) {
	row, err := r.queries.GetCartLineByIdentity(ctx, tx, sqlc.CartLineKeyParams{ShopperID: owner.ID(), Identity: identity.String()})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("cart line not found", err, infra.KindNotFound), errs.ErrCartLineNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart line", err)
	}
	line, err := converter.CartLineFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart line", err)
	}
	return line, nil
}

// Create inserts a new line. If the shopper already holds a line for the
// same wine nothing is written and errs.ErrCartLineExists is returned.
func (r *CartRepository) Create(ctx context.Context, tx sqlc.DBTX, line *cart.Line) error {
	params, err := converter.CartLineToCreateParams(line)
	if err != nil {
		return infra.WrapRepoErr("invalid cart line", err, infra.KindConflict)
	}
	n, err := r.queries.CreateCartLine(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create cart line", err)
	}
	if n == 0 {
		return errs.Mark(infra.WrapRepoErr("cart line already exists", nil, infra.KindConflict), errs.ErrCartLineExists)
	}
	return nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, tx sqlc.DBTX, line *cart.Line) error {
	qty, err := converter.Int32(line.Quantity())
	if err != nil {
		return infra.WrapRepoErr("invalid cart line quantity", err, infra.KindConflict)
	}
	if err := r.queries.UpdateCartLineQuantity(ctx, tx, sqlc.UpdateCartLineQuantityParams{ID: line.ID(), Quantity: qty}); err != nil {
		return infra.WrapRepoErr("failed to update cart line", err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, tx sqlc.DBTX, lineID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteCartLine(ctx, tx, lineID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete cart line", err)
	}
	return n > 0, nil
}

func (r *CartRepository) DeleteByIdentity(ctx context.Context, tx sqlc.DBTX, owner shopper.Shopper, identity listing.Identity) (bool, error) {
	n, err := r.queries.DeleteCartLineByIdentity(ctx, tx, sqlc.CartLineKeyParams{ShopperID: owner.ID(), Identity: identity.String()})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete cart line", err)
	}
	return n > 0, nil
}

func (r *CartRepository) DeleteAll(ctx context.Context, tx sqlc.DBTX, owner shopper.Shopper) (int, error) {
	n, err := r.queries.DeleteCartLinesByShopper(ctx, tx, owner.ID())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear cart", err)
	}
	return int(n), nil
}
