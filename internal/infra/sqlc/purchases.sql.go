package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPurchase = `-- name: CreatePurchase :exec
INSERT INTO purchases (id, buyer_id, email, category, identity, country, region, variety, winery, year, list_price, unit_price, quantity, source, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

type CreatePurchaseParams struct {
	ID        uuid.UUID          `json:"id"`
	BuyerID   uuid.UUID          `json:"buyer_id"`
	Email     string             `json:"email"`
	Category  string             `json:"category"`
	Identity  string             `json:"identity"`
	Country   string             `json:"country"`
	Region    string             `json:"region"`
	Variety   string             `json:"variety"`
	Winery    string             `json:"winery"`
	Year      string             `json:"year"`
	ListPrice pgtype.Numeric     `json:"list_price"`
	UnitPrice pgtype.Numeric     `json:"unit_price"`
	Quantity  int32              `json:"quantity"`
	Source    string             `json:"source"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreatePurchase(ctx context.Context, db DBTX, arg CreatePurchaseParams) error {
	_, err := db.Exec(ctx, createPurchase,
		arg.ID,
		arg.BuyerID,
		arg.Email,
		arg.Category,
		arg.Identity,
		arg.Country,
		arg.Region,
		arg.Variety,
		arg.Winery,
		arg.Year,
		arg.ListPrice,
		arg.UnitPrice,
		arg.Quantity,
		arg.Source,
		arg.CreatedAt,
	)
	return err
}

const purchaseColumns = `id, buyer_id, email, category, identity, country, region, variety, winery, year, list_price, unit_price, quantity, source, created_at`

const listPurchasesByBuyerFirstPage = `-- name: ListPurchasesByBuyerFirstPage :many
SELECT ` + purchaseColumns + ` FROM purchases
WHERE buyer_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

type ListPurchasesByBuyerFirstPageParams struct {
	BuyerID uuid.UUID `json:"buyer_id"`
	Limit   int32     `json:"limit"`
}

func (q *Queries) ListPurchasesByBuyerFirstPage(ctx context.Context, db DBTX, arg ListPurchasesByBuyerFirstPageParams) ([]Purchases, error) {
	rows, err := db.Query(ctx, listPurchasesByBuyerFirstPage, arg.BuyerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPurchases(rows)
}

const listPurchasesByBuyerKeyset = `-- name: ListPurchasesByBuyerKeyset :many
SELECT ` + purchaseColumns + ` FROM purchases
WHERE buyer_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListPurchasesByBuyerKeysetParams struct {
	BuyerID   uuid.UUID          `json:"buyer_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ID        uuid.UUID          `json:"id"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) ListPurchasesByBuyerKeyset(ctx context.Context, db DBTX, arg ListPurchasesByBuyerKeysetParams) ([]Purchases, error) {
	rows, err := db.Query(ctx, listPurchasesByBuyerKeyset, arg.BuyerID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPurchases(rows)
}

func collectPurchases(rows pgx.Rows) ([]Purchases, error) {
	defer rows.Close()
	var items []Purchases
	for rows.Next() {
		var i Purchases
		if err := rows.Scan(
			&i.ID,
			&i.BuyerID,
			&i.Email,
			&i.Category,
			&i.Identity,
			&i.Country,
			&i.Region,
			&i.Variety,
			&i.Winery,
			&i.Year,
			&i.ListPrice,
			&i.UnitPrice,
			&i.Quantity,
			&i.Source,
			&i.CreatedAt,
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
