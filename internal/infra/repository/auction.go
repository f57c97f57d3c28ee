package repository

import (
	"context"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository/converter"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AuctionWriteQueries interface {
	CreateAuctionIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAuctionIfAbsentParams) (uuid.UUID, error)
	GetAuctionForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Auctions, error)
	UpdateAuctionHighestBid(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAuctionHighestBidParams) error
	ExtendAuction(ctx context.Context, db sqlc.DBTX, arg sqlc.ExtendAuctionParams) error
	DeleteAuction(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type AuctionRepository struct {
	queries AuctionWriteQueries
	db      sqlc.DBTX
}

func NewAuctionRepository(queries AuctionWriteQueries, db sqlc.DBTX) *AuctionRepository {
	return &AuctionRepository{
		queries: queries,
		db:      db,
	}
}

// CreateIfAbsent relies on ON CONFLICT DO NOTHING so a duplicate does not
// abort the surrounding transaction.
func (r *AuctionRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, a *auction.Auction) error {
	params, err := converter.AuctionToCreateParams(a)
	if err != nil {
		return infra.WrapRepoErr("invalid auction", err, infra.KindConflict)
	}
	if _, err := r.queries.CreateAuctionIfAbsent(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return errs.Mark(infra.WrapRepoErr("auction already open", err, infra.KindDuplicateKey), errs.ErrAuctionAlreadyOpen)
		}
		return infra.WrapRepoErr("failed to create auction", err)
	}
	return nil
}

func (r *AuctionRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*auction.Auction, error) {
	row, err := r.queries.GetAuctionForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("auction not found", err, infra.KindNotFound), errs.ErrAuctionNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock auction", err)
	}
	a, err := converter.AuctionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode auction", err)
	}
	return a, nil
}

func (r *AuctionRepository) UpdateHighestBid(ctx context.Context, tx sqlc.DBTX, a *auction.Auction) error {
	err := r.queries.UpdateAuctionHighestBid(ctx, tx, sqlc.UpdateAuctionHighestBidParams{
		ID:         a.ID(),
		HighestBid: pgconv.DecimalToNumeric(a.HighestBid()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update highest bid", err)
	}
	return nil
}

func (r *AuctionRepository) SaveExtension(ctx context.Context, tx sqlc.DBTX, a *auction.Auction) error {
	qty, err := converter.Int32(a.QuantityAvailable())
	if err != nil {
		return infra.WrapRepoErr("invalid auction quantity", err, infra.KindConflict)
	}
	err = r.queries.ExtendAuction(ctx, tx, sqlc.ExtendAuctionParams{
		ID:                a.ID(),
		QuantityAvailable: qty,
		EndsAt:            pgconv.TimeToPgtype(a.EndsAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to extend auction", err)
	}
	return nil
}

func (r *AuctionRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DeleteAuction(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete auction", err)
	}
	return nil
}
