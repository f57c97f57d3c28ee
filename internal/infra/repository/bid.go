package repository

import (
	"context"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository/converter"
	"cellar-market/internal/infra/sqlc"

	"github.com/google/uuid"
)

type BidWriteQueries interface {
	CreateBidPlacement(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBidPlacementParams) error
	ListOpenBidsByAuction(ctx context.Context, db sqlc.DBTX, auctionID uuid.UUID) ([]sqlc.BidPlacements, error)
	UpdateBidStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBidStatusParams) error
}

type BidRepository struct {
	queries BidWriteQueries
	db      sqlc.DBTX
}

func NewBidRepository(queries BidWriteQueries, db sqlc.DBTX) *BidRepository {
	return &BidRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BidRepository) Create(ctx context.Context, tx sqlc.DBTX, p *auction.Placement) error {
	params, err := converter.PlacementToCreateParams(p)
	if err != nil {
		return infra.WrapRepoErr("invalid bid", err, infra.KindConflict)
	}
	if err := r.queries.CreateBidPlacement(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record bid", err)
	}
	return nil
}

func (r *BidRepository) ListOpen(ctx context.Context, tx sqlc.DBTX, auctionID uuid.UUID) ([]*auction.Placement, error) {
	rows, err := r.queries.ListOpenBidsByAuction(ctx, tx, auctionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open bids", err)
	}
	out := make([]*auction.Placement, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PlacementFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode bid", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *BidRepository) MarkStatus(ctx context.Context, tx sqlc.DBTX, bidID uuid.UUID, status auction.BidStatus) error {
	if err := r.queries.UpdateBidStatus(ctx, tx, sqlc.UpdateBidStatusParams{ID: bidID, Status: string(status)}); err != nil {
		return infra.WrapRepoErr("failed to update bid status", err)
	}
	return nil
}
