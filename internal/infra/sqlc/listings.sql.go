package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listingColumns = `category, identity, country, region, variety, winery, year, price, quantity_available, created_at`

func scanListing(row interface{ Scan(...any) error }) (Listings, error) {
	var i Listings
	err := row.Scan(
		&i.Category,
		&i.Identity,
		&i.Country,
		&i.Region,
		&i.Variety,
		&i.Winery,
		&i.Year,
		&i.Price,
		&i.QuantityAvailable,
		&i.CreatedAt,
	)
	return i, err
}

const upsertListing = `-- name: UpsertListing :one
INSERT INTO listings (category, identity, country, region, variety, winery, year, price, quantity_available, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (category, identity)
DO UPDATE SET quantity_available = listings.quantity_available + EXCLUDED.quantity_available
RETURNING ` + listingColumns

type UpsertListingParams struct {
	Category          string             `json:"category"`
	Identity          string             `json:"identity"`
	Country           string             `json:"country"`
	Region            string             `json:"region"`
	Variety           string             `json:"variety"`
	Winery            string             `json:"winery"`
	Year              string             `json:"year"`
	Price             pgtype.Numeric     `json:"price"`
	QuantityAvailable int32              `json:"quantity_available"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) UpsertListing(ctx context.Context, db DBTX, arg UpsertListingParams) (Listings, error) {
	row := db.QueryRow(ctx, upsertListing,
		arg.Category,
		arg.Identity,
		arg.Country,
		arg.Region,
		arg.Variety,
		arg.Winery,
		arg.Year,
		arg.Price,
		arg.QuantityAvailable,
		arg.CreatedAt,
	)
	return scanListing(row)
}

type ListingKeyParams struct {
	Category string `json:"category"`
	Identity string `json:"identity"`
}

const getListing = `-- name: GetListing :one
SELECT ` + listingColumns + ` FROM listings
WHERE category = $1 AND identity = $2`

func (q *Queries) GetListing(ctx context.Context, db DBTX, arg ListingKeyParams) (Listings, error) {
	return scanListing(db.QueryRow(ctx, getListing, arg.Category, arg.Identity))
}

const getListingForUpdate = `-- name: GetListingForUpdate :one
SELECT ` + listingColumns + ` FROM listings
WHERE category = $1 AND identity = $2
FOR UPDATE`

func (q *Queries) GetListingForUpdate(ctx context.Context, db DBTX, arg ListingKeyParams) (Listings, error) {
	return scanListing(db.QueryRow(ctx, getListingForUpdate, arg.Category, arg.Identity))
}

const updateListingQuantity = `-- name: UpdateListingQuantity :execrows
UPDATE listings SET quantity_available = $3
WHERE category = $1 AND identity = $2`

type UpdateListingQuantityParams struct {
	Category          string `json:"category"`
	Identity          string `json:"identity"`
	QuantityAvailable int32  `json:"quantity_available"`
}

func (q *Queries) UpdateListingQuantity(ctx context.Context, db DBTX, arg UpdateListingQuantityParams) (int64, error) {
	result, err := db.Exec(ctx, updateListingQuantity, arg.Category, arg.Identity, arg.QuantityAvailable)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteListing = `-- name: DeleteListing :execrows
DELETE FROM listings WHERE category = $1 AND identity = $2`

func (q *Queries) DeleteListing(ctx context.Context, db DBTX, arg ListingKeyParams) (int64, error) {
	result, err := db.Exec(ctx, deleteListing, arg.Category, arg.Identity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listListingsByCategory = `-- name: ListListingsByCategory :many
SELECT ` + listingColumns + ` FROM listings
WHERE category = $1
ORDER BY created_at DESC, identity
LIMIT $2 OFFSET $3`

type ListListingsByCategoryParams struct {
	Category string `json:"category"`
	Limit    int32  `json:"limit"`
	Offset   int32  `json:"offset"`
}

func (q *Queries) ListListingsByCategory(ctx context.Context, db DBTX, arg ListListingsByCategoryParams) ([]Listings, error) {
	rows, err := db.Query(ctx, listListingsByCategory, arg.Category, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Listings
	for rows.Next() {
		i, err := scanListing(rows)
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
