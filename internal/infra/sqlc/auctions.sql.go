package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const auctionColumns = `id, category, identity, country, region, variety, winery, year, list_price, quantity_available, highest_bid, started_at, ends_at`

func scanAuction(row interface{ Scan(...any) error }) (Auctions, error) {
	var i Auctions
	err := row.Scan(
		&i.ID,
		&i.Category,
		&i.Identity,
		&i.Country,
		&i.Region,
		&i.Variety,
		&i.Winery,
		&i.Year,
		&i.ListPrice,
		&i.QuantityAvailable,
		&i.HighestBid,
		&i.StartedAt,
		&i.EndsAt,
	)
	return i, err
}

const createAuctionIfAbsent = `-- name: CreateAuctionIfAbsent :one
INSERT INTO auctions (id, category, identity, country, region, variety, winery, year, list_price, quantity_available, highest_bid, started_at, ends_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (category, identity) DO NOTHING
RETURNING id`

type CreateAuctionIfAbsentParams struct {
	ID                uuid.UUID          `json:"id"`
	Category          string             `json:"category"`
	Identity          string             `json:"identity"`
	Country           string             `json:"country"`
	Region            string             `json:"region"`
	Variety           string             `json:"variety"`
	Winery            string             `json:"winery"`
	Year              string             `json:"year"`
	ListPrice         pgtype.Numeric     `json:"list_price"`
	QuantityAvailable int32              `json:"quantity_available"`
	HighestBid        pgtype.Numeric     `json:"highest_bid"`
	StartedAt         pgtype.Timestamptz `json:"started_at"`
	EndsAt            pgtype.Timestamptz `json:"ends_at"`
}

// CreateAuctionIfAbsent returns pgx.ErrNoRows when an auction for the same
// (category, identity) already exists.
func (q *Queries) CreateAuctionIfAbsent(ctx context.Context, db DBTX, arg CreateAuctionIfAbsentParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createAuctionIfAbsent,
		arg.ID,
		arg.Category,
		arg.Identity,
		arg.Country,
		arg.Region,
		arg.Variety,
		arg.Winery,
		arg.Year,
		arg.ListPrice,
		arg.QuantityAvailable,
		arg.HighestBid,
		arg.StartedAt,
		arg.EndsAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getAuctionForUpdate = `-- name: GetAuctionForUpdate :one
SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1 FOR UPDATE`

func (q *Queries) GetAuctionForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Auctions, error) {
	return scanAuction(db.QueryRow(ctx, getAuctionForUpdate, id))
}

const updateAuctionHighestBid = `-- name: UpdateAuctionHighestBid :exec
UPDATE auctions SET highest_bid = $2 WHERE id = $1`

type UpdateAuctionHighestBidParams struct {
	ID         uuid.UUID      `json:"id"`
	HighestBid pgtype.Numeric `json:"highest_bid"`
}

func (q *Queries) UpdateAuctionHighestBid(ctx context.Context, db DBTX, arg UpdateAuctionHighestBidParams) error {
	_, err := db.Exec(ctx, updateAuctionHighestBid, arg.ID, arg.HighestBid)
	return err
}

const extendAuction = `-- name: ExtendAuction :exec
UPDATE auctions SET quantity_available = $2, ends_at = $3 WHERE id = $1`

type ExtendAuctionParams struct {
	ID                uuid.UUID          `json:"id"`
	QuantityAvailable int32              `json:"quantity_available"`
	EndsAt            pgtype.Timestamptz `json:"ends_at"`
}

func (q *Queries) ExtendAuction(ctx context.Context, db DBTX, arg ExtendAuctionParams) error {
	_, err := db.Exec(ctx, extendAuction, arg.ID, arg.QuantityAvailable, arg.EndsAt)
	return err
}

const deleteAuction = `-- name: DeleteAuction :exec
DELETE FROM auctions WHERE id = $1`

func (q *Queries) DeleteAuction(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, deleteAuction, id)
	return err
}

const listDueAuctionIDs = `-- name: ListDueAuctionIDs :many
SELECT id FROM auctions WHERE ends_at <= $1 ORDER BY ends_at, id`

func (q *Queries) ListDueAuctionIDs(ctx context.Context, db DBTX, tick pgtype.Timestamptz) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listDueAuctionIDs, tick)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type AuctionViewRow struct {
	Auctions
	OpenBidCount int64 `json:"open_bid_count"`
}

const auctionViewSelect = `SELECT a.id, a.category, a.identity, a.country, a.region, a.variety, a.winery, a.year,
       a.list_price, a.quantity_available, a.highest_bid, a.started_at, a.ends_at,
       (SELECT count(*) FROM bid_placements b WHERE b.auction_id = a.id AND b.status = 'open') AS open_bid_count
FROM auctions a`

func scanAuctionView(row interface{ Scan(...any) error }) (AuctionViewRow, error) {
	var i AuctionViewRow
	err := row.Scan(
		&i.ID,
		&i.Category,
		&i.Identity,
		&i.Country,
		&i.Region,
		&i.Variety,
		&i.Winery,
		&i.Year,
		&i.ListPrice,
		&i.QuantityAvailable,
		&i.HighestBid,
		&i.StartedAt,
		&i.EndsAt,
		&i.OpenBidCount,
	)
	return i, err
}

const getAuctionView = `-- name: GetAuctionView :one
` + auctionViewSelect + `
WHERE a.id = $1`

func (q *Queries) GetAuctionView(ctx context.Context, db DBTX, id uuid.UUID) (AuctionViewRow, error) {
	return scanAuctionView(db.QueryRow(ctx, getAuctionView, id))
}

const listAuctionViewsByCategory = `-- name: ListAuctionViewsByCategory :many
` + auctionViewSelect + `
WHERE a.category = $1
ORDER BY a.ends_at, a.id
LIMIT $2 OFFSET $3`

type ListAuctionViewsByCategoryParams struct {
	Category string `json:"category"`
	Limit    int32  `json:"limit"`
	Offset   int32  `json:"offset"`
}

func (q *Queries) ListAuctionViewsByCategory(ctx context.Context, db DBTX, arg ListAuctionViewsByCategoryParams) ([]AuctionViewRow, error) {
	rows, err := db.Query(ctx, listAuctionViewsByCategory, arg.Category, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuctionViewRow
	for rows.Next() {
		i, err := scanAuctionView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
