package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"cellar-market/internal/infra/repository"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy bounds how often a transaction that lost a serialization race
// or a deadlock is replayed. Waits double per retry plus up to 20% jitter.
type retryPolicy struct {
	retries int
	base    time.Duration
}

var defaultRetry = retryPolicy{retries: 3, base: 100 * time.Millisecond}

func (p retryPolicy) wait(retry int) time.Duration {
	d := p.base << retry
	return d + time.Duration(rand.Int64N(int64(d)/5+1))
}

// retryable reports serialization failures (40001) and deadlocks (40P01).
// Both happen when two checkouts or a bid and a clearing pass contend for
// the same rows.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a ReadCommitted transaction. Row locks taken with
// FOR UPDATE inside fn serialize work per listing and per auction.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	for retry := 0; ; retry++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if retry == u.retry.retries {
			slog.Error("transaction failed after max retries", "attempts", retry+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.wait(retry)
		slog.Warn("retrying transaction",
			"attempt", retry+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt runs fn once. Rollback after a successful commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rerr := pgxTx.Rollback(ctx); rerr != nil && !errors.Is(rerr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rerr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// repositories are built on first use
	listingRepo  shared.ListingRepository
	cartRepo     shared.CartRepository
	purchaseRepo shared.PurchaseRepository
	auctionRepo  shared.AuctionRepository
	bidRepo      shared.BidRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.uow.q, t.dbtx)
	}
	return t.listingRepo
}

func (t *pgTx) CartLines() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q, t.dbtx)
	}
	return t.cartRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository(t.uow.q, t.dbtx)
	}
	return t.purchaseRepo
}

func (t *pgTx) Auctions() shared.AuctionRepository {
	if t.auctionRepo == nil {
		t.auctionRepo = repository.NewAuctionRepository(t.uow.q, t.dbtx)
	}
	return t.auctionRepo
}

func (t *pgTx) Bids() shared.BidRepository {
	if t.bidRepo == nil {
		t.bidRepo = repository.NewBidRepository(t.uow.q, t.dbtx)
	}
	return t.bidRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}
