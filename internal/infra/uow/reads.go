package uow

import (
	"context"
	"time"

	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository/converter"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/pkg/pgconv"
	"cellar-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads are the unlocked lookups a command makes before it decides
// what to lock. Outside a transaction they run on the pool.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) ListingByKey(ctx context.Context, category string, identity listing.Identity) (*shared.ListingStock, error) {
	row, err := r.uow.q.GetListing(ctx, r.dbtx, sqlc.ListingKeyParams{Category: category, Identity: identity.String()})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("listing not found", err, infra.KindNotFound), errs.ErrNoSuchListing)
		}
		return nil, infra.WrapRepoErr("failed to get listing", err)
	}

	l, err := converter.ListingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listing", err)
	}
	return &shared.ListingStock{
		Listing:           l.Snapshot(),
		QuantityAvailable: l.QuantityAvailable(),
	}, nil
}

func (r *commandReads) CartLinesOf(ctx context.Context, owner shopper.Shopper) ([]*cart.Line, error) {
	rows, err := r.uow.q.ListCartLinesByShopper(ctx, r.dbtx, owner.ID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}

	lines := make([]*cart.Line, 0, len(rows))
	for _, row := range rows {
		line, err := converter.CartLineFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode cart line", err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *commandReads) DueAuctionIDs(ctx context.Context, tick time.Time) ([]uuid.UUID, error) {
	ids, err := r.uow.q.ListDueAuctionIDs(ctx, r.dbtx, pgconv.TimeToPgtype(tick))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due auctions", err)
	}
	return ids, nil
}
