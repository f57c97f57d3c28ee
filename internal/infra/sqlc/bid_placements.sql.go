package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBidPlacement = `-- name: CreateBidPlacement :exec
INSERT INTO bid_placements (id, auction_id, bidder_id, email, price, quantity, status, placed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreateBidPlacementParams struct {
	ID        uuid.UUID          `json:"id"`
	AuctionID uuid.UUID          `json:"auction_id"`
	BidderID  uuid.UUID          `json:"bidder_id"`
	Email     string             `json:"email"`
	Price     pgtype.Numeric     `json:"price"`
	Quantity  int32              `json:"quantity"`
	Status    string             `json:"status"`
	PlacedAt  pgtype.Timestamptz `json:"placed_at"`
}

func (q *Queries) CreateBidPlacement(ctx context.Context, db DBTX, arg CreateBidPlacementParams) error {
	_, err := db.Exec(ctx, createBidPlacement,
		arg.ID,
		arg.AuctionID,
		arg.BidderID,
		arg.Email,
		arg.Price,
		arg.Quantity,
		arg.Status,
		arg.PlacedAt,
	)
	return err
}

const listOpenBidsByAuction = `-- name: ListOpenBidsByAuction :many
SELECT id, auction_id, bidder_id, email, price, quantity, status, placed_at
FROM bid_placements
WHERE auction_id = $1 AND status = 'open'
ORDER BY placed_at, id`

func (q *Queries) ListOpenBidsByAuction(ctx context.Context, db DBTX, auctionID uuid.UUID) ([]BidPlacements, error) {
	rows, err := db.Query(ctx, listOpenBidsByAuction, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BidPlacements
	for rows.Next() {
		var i BidPlacements
		if err := rows.Scan(
			&i.ID,
			&i.AuctionID,
			&i.BidderID,
			&i.Email,
			&i.Price,
			&i.Quantity,
			&i.Status,
			&i.PlacedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBidStatus = `-- name: UpdateBidStatus :exec
UPDATE bid_placements SET status = $2 WHERE id = $1`

type UpdateBidStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdateBidStatus(ctx context.Context, db DBTX, arg UpdateBidStatusParams) error {
	_, err := db.Exec(ctx, updateBidStatus, arg.ID, arg.Status)
	return err
}
