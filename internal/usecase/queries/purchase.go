package queries

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/queries/mock_purchase.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PurchaseReadStore interface {
	FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*PurchaseView, error)
	FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PurchaseView, error)
}

type PurchaseQueries interface {
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*PurchaseView, *Cursor, error)
}

type purchaseQueriesImpl struct {
	store PurchaseReadStore
}

func NewPurchaseQueries(store PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{store: store}
}

func (q *purchaseQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*PurchaseView, *Cursor, error) {
	limit = ClampLimit(limit)
	// One extra row tells us whether another page exists.
	fetch := int32(limit + 1)

	var rows []*PurchaseView
	var err error
	if cursor.empty() {
		rows, err = q.store.FindByBuyerFirstPage(ctx, buyerID, fetch)
	} else {
		key, kerr := ParsePurchaseKey(cursor.After)
		if kerr != nil {
			return nil, nil, kerr
		}
		rows, err = q.store.FindByBuyerKeyset(ctx, buyerID, key.CreatedAt, key.ID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}

	rows = rows[:limit]
	last := rows[limit-1]
	next := &Cursor{After: PurchaseKey{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()}
	return rows, next, nil
}
