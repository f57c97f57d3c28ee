package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const cartLineColumns = `id, shopper_id, email, category, identity, country, region, variety, winery, year, price, quantity, created_at`

func scanCartLine(row interface{ Scan(...any) error }) (CartLines, error) {
	var i CartLines
	err := row.Scan(
		&i.ID,
		&i.ShopperID,
		&i.Email,
		&i.Category,
		&i.Identity,
		&i.Country,
		&i.Region,
		&i.Variety,
		&i.Winery,
		&i.Year,
		&i.Price,
		&i.Quantity,
		&i.CreatedAt,
	)
	return i, err
}

const getCartLineByIdentity = `-- name: GetCartLineByIdentity :one
SELECT ` + cartLineColumns + ` FROM cart_lines
WHERE shopper_id = $1 AND identity = $2
FOR UPDATE`

type CartLineKeyParams struct {
	ShopperID uuid.UUID `json:"shopper_id"`
	Identity  string    `json:"identity"`
}

func (q *Queries) GetCartLineByIdentity(ctx context.Context, db DBTX, arg CartLineKeyParams) (CartLines, error) {
	return scanCartLine(db.QueryRow(ctx, getCartLineByIdentity, arg.ShopperID, arg.Identity))
}

const createCartLine = `-- name: CreateCartLine :execrows
INSERT INTO cart_lines (id, shopper_id, email, category, identity, country, region, variety, winery, year, price, quantity, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (shopper_id, identity) DO NOTHING`

type CreateCartLineParams struct {
	ID        uuid.UUID          `json:"id"`
	ShopperID uuid.UUID          `json:"shopper_id"`
	Email     string             `json:"email"`
	Category  string             `json:"category"`
	Identity  string             `json:"identity"`
	Country   string             `json:"country"`
	Region    string             `json:"region"`
	Variety   string             `json:"variety"`
	Winery    string             `json:"winery"`
	Year      string             `json:"year"`
	Price     pgtype.Numeric     `json:"price"`
	Quantity  int32              `json:"quantity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateCartLine(ctx context.Context, db DBTX, arg CreateCartLineParams) (int64, error) {
	result, err := db.Exec(ctx, createCartLine,
		arg.ID,
		arg.ShopperID,
		arg.Email,
		arg.Category,
		arg.Identity,
		arg.Country,
		arg.Region,
		arg.Variety,
		arg.Winery,
		arg.Year,
		arg.Price,
		arg.Quantity,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateCartLineQuantity = `-- name: UpdateCartLineQuantity :exec
UPDATE cart_lines SET quantity = $2 WHERE id = $1`

type UpdateCartLineQuantityParams struct {
	ID       uuid.UUID `json:"id"`
	Quantity int32     `json:"quantity"`
}

func (q *Queries) UpdateCartLineQuantity(ctx context.Context, db DBTX, arg UpdateCartLineQuantityParams) error {
	_, err := db.Exec(ctx, updateCartLineQuantity, arg.ID, arg.Quantity)
	return err
}

const deleteCartLine = `-- name: DeleteCartLine :execrows
DELETE FROM cart_lines WHERE id = $1`

func (q *Queries) DeleteCartLine(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteCartLine, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCartLineByIdentity = `-- name: DeleteCartLineByIdentity :execrows
DELETE FROM cart_lines WHERE shopper_id = $1 AND identity = $2`

func (q *Queries) DeleteCartLineByIdentity(ctx context.Context, db DBTX, arg CartLineKeyParams) (int64, error) {
	result, err := db.Exec(ctx, deleteCartLineByIdentity, arg.ShopperID, arg.Identity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCartLinesByShopper = `-- name: DeleteCartLinesByShopper :execrows
DELETE FROM cart_lines WHERE shopper_id = $1`

func (q *Queries) DeleteCartLinesByShopper(ctx context.Context, db DBTX, shopperID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteCartLinesByShopper, shopperID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listCartLinesByShopper = `-- name: ListCartLinesByShopper :many
SELECT ` + cartLineColumns + ` FROM cart_lines
WHERE shopper_id = $1
ORDER BY created_at, id`

func (q *Queries) ListCartLinesByShopper(ctx context.Context, db DBTX, shopperID uuid.UUID) ([]CartLines, error) {
	rows, err := db.Query(ctx, listCartLinesByShopper, shopperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartLines
	for rows.Next() {
		i, err := scanCartLine(rows)
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
