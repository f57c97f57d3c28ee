package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/mock_checkout.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// InsufficientStockError names the cart line that could not be covered.
// Settled holds purchases committed before the failure; it is empty when
// checkout runs all-or-nothing.
type InsufficientStockError struct {
	Line      *cart.Line
	Available int
	Settled   []*purchase.Purchase
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: wanted %d, %d available",
		e.Line.Identity(), e.Line.Quantity(), e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrInsufficientStock
}

type CheckoutResult struct {
	Purchases      []*purchase.Purchase
	AuctionsOpened []uuid.UUID
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, owner shopper.Shopper) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow    shared.UnitOfWork
	market config.MarketConfig
	clock  clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, market config.MarketConfig, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, market: market, clock: clk}
}

// lineOutcome is what settling one cart line produced.
type lineOutcome struct {
	purchase  *purchase.Purchase
	auctionID *uuid.UUID
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, owner shopper.Shopper) (*CheckoutResult, error) {
	if err := owner.Require(); err != nil {
		return nil, err
	}

	lines, err := uc.uow.CommandReads().CartLinesOf(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.ErrEmptyCart
	}

	var result *CheckoutResult
	if uc.market.CheckoutAllOrNothing {
		result, err = uc.checkoutAtomic(ctx, owner, lines)
	} else {
		result, err = uc.checkoutPerLine(ctx, owner, lines)
	}
	if err != nil {
		var stockErr *InsufficientStockError
		if errs.As(err, &stockErr) {
			uc.discardCart(ctx, owner)
			slog.Warn("checkout failed on stock",
				"shopper_id", owner.ID().String(),
				"identity", stockErr.Line.Identity().String(),
				"settled", len(stockErr.Settled))
		}
		return nil, err
	}

	slog.Info("checkout completed",
		"shopper_id", owner.ID().String(),
		"purchases", len(result.Purchases),
		"auctions_opened", len(result.AuctionsOpened))
	return result, nil
}

// checkoutPerLine commits each line on its own. A failing line does not undo
// lines settled before it.
func (uc *checkoutUseCaseImpl) checkoutPerLine(ctx context.Context, owner shopper.Shopper, lines []*cart.Line) (*CheckoutResult, error) {
	result := &CheckoutResult{}
	for _, line := range lines {
		var out *lineOutcome
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			// The line delete doubles as a claim: a concurrent checkout of
			// the same cart finds it gone and skips it.
			deleted, derr := tx.CartLines().Delete(ctx, tx.DB(), line.ID())
			if derr != nil {
				return derr
			}
			if !deleted {
				out = nil
				return nil
			}
			out, derr = uc.settleLine(ctx, tx, owner, line, uc.clock.Now())
			return derr
		})
		if err != nil {
			var stockErr *InsufficientStockError
			if errs.As(err, &stockErr) {
				stockErr.Settled = result.Purchases
			}
			return nil, err
		}
		result.add(out)
	}
	return result, nil
}

// checkoutAtomic settles every line in one transaction.
func (uc *checkoutUseCaseImpl) checkoutAtomic(ctx context.Context, owner shopper.Shopper, lines []*cart.Line) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &CheckoutResult{}
		now := uc.clock.Now()
		for _, line := range lines {
			deleted, derr := tx.CartLines().Delete(ctx, tx.DB(), line.ID())
			if derr != nil {
				return derr
			}
			if !deleted {
				continue
			}
			out, derr := uc.settleLine(ctx, tx, owner, line, now)
			if derr != nil {
				return derr
			}
			result.add(out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *checkoutUseCaseImpl) settleLine(ctx context.Context, tx shared.Tx, owner shopper.Shopper, line *cart.Line, now time.Time) (*lineOutcome, error) {
	snap := line.Listing()
	l, err := tx.Listings().FindForUpdate(ctx, tx.DB(), snap.Category, snap.Identity)
	if err != nil {
		if errs.Is(err, errs.ErrNoSuchListing) {
			return nil, &InsufficientStockError{Line: line}
		}
		return nil, err
	}
	if !l.Covers(line.Quantity()) {
		return nil, &InsufficientStockError{Line: line, Available: l.QuantityAvailable()}
	}
	if err := l.Decrement(line.Quantity()); err != nil {
		return nil, err
	}

	p, err := purchase.NewCheckoutPurchase(owner, l.Snapshot(), line.Quantity(), now)
	if err != nil {
		return nil, err
	}
	if err := tx.Purchases().Create(ctx, tx.DB(), p); err != nil {
		return nil, err
	}

	out := &lineOutcome{purchase: p}
	switch listing.EvaluateLowStock(l.QuantityAvailable(), l.Price(), uc.market.LowStockRatio) {
	case listing.RemoveListing:
		err = tx.Listings().Delete(ctx, tx.DB(), l.Category(), l.Identity())
	case listing.ConvertToAuction:
		out.auctionID, err = uc.convertToAuction(ctx, tx, l, now)
	default:
		err = tx.Listings().SaveQuantity(ctx, tx.DB(), l)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// convertToAuction moves the remaining stock of l into a new auction. When
// an auction for the same listing is already open the listing keeps its
// stock and stays on sale.
func (uc *checkoutUseCaseImpl) convertToAuction(ctx context.Context, tx shared.Tx, l *listing.Listing, now time.Time) (*uuid.UUID, error) {
	a, err := auction.Open(l.Snapshot(), l.QuantityAvailable(), l.Price(), auction.EndAfter(now, uc.market.AuctionDuration), now)
	if err != nil {
		return nil, err
	}

	if err := tx.Auctions().CreateIfAbsent(ctx, tx.DB(), a); err != nil {
		if !errs.Is(err, errs.ErrAuctionAlreadyOpen) {
			return nil, err
		}
		slog.Warn("auction already open, listing kept",
			"category", l.Category(),
			"identity", l.Identity().String(),
			"remaining", l.QuantityAvailable())
		return nil, tx.Listings().SaveQuantity(ctx, tx.DB(), l)
	}

	if err := tx.Listings().Delete(ctx, tx.DB(), l.Category(), l.Identity()); err != nil {
		return nil, err
	}

	slog.Info("listing converted to auction",
		"auction_id", a.ID().String(),
		"identity", l.Identity().String(),
		"quantity", a.QuantityAvailable(),
		"ends_at", a.EndsAt())
	id := a.ID()
	return &id, nil
}

func (uc *checkoutUseCaseImpl) discardCart(ctx context.Context, owner shopper.Shopper) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.CartLines().DeleteAll(ctx, tx.DB(), owner)
		return derr
	})
	if err != nil {
		slog.Error("failed to clear cart after checkout failure",
			"shopper_id", owner.ID().String(),
			"error", err.Error())
	}
}

func (r *CheckoutResult) add(out *lineOutcome) {
	if out == nil {
		return
	}
	r.Purchases = append(r.Purchases, out.purchase)
	if out.auctionID != nil {
		r.AuctionsOpened = append(r.AuctionsOpened, *out.auctionID)
	}
}
