//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ListingQuantity reports the stock left on a listing. ok is false once the
// listing row is gone.
func ListingQuantity(t *testing.T, db DBLike, category, identity string) (qty int, ok bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT quantity_available FROM listings WHERE category = $1 AND identity = $2",
		category, identity).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false
	}
	require.NoError(t, err)
	return qty, true
}

func CountPurchases(t *testing.T, db DBLike, buyerID uuid.UUID, source string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM purchases WHERE buyer_id = $1 AND source = $2",
		buyerID, source).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

func BidStatus(t *testing.T, db DBLike, auctionID, bidderID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM bid_placements WHERE auction_id = $1 AND bidder_id = $2",
		auctionID, bidderID).Scan(&status)
	require.NoError(t, err)
	return status
}

// PurchasedQuantity sums the units bought of one wine through source.
func PurchasedQuantity(t *testing.T, db DBLike, identity, source string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(sum(quantity), 0) FROM purchases WHERE identity = $1 AND source = $2",
		identity, source).Scan(&n)
	require.NoError(t, err)
	return n
}

// AuctionQuantity reports the units left on the open auction for a wine. ok
// is false when no auction is open.
func AuctionQuantity(t *testing.T, db DBLike, category, identity string) (qty int, ok bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT quantity_available FROM auctions WHERE category = $1 AND identity = $2",
		category, identity).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false
	}
	require.NoError(t, err)
	return qty, true
}

func CountBids(t *testing.T, db DBLike, auctionID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bid_placements WHERE auction_id = $1 AND status = $2",
		auctionID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// CartLines returns the number of lines a shopper holds for a wine and their
// summed quantity.
func CartLines(t *testing.T, db DBLike, shopperID uuid.UUID, identity string) (lines, quantity int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT count(*), COALESCE(sum(quantity), 0) FROM cart_lines WHERE shopper_id = $1 AND identity = $2",
		shopperID, identity).Scan(&lines, &quantity)
	require.NoError(t, err)
	return lines, quantity
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every market table, keeping the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
