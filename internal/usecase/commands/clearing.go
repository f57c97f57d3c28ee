package commands

//go:generate mockgen -source=clearing.go -destination=../../../tests/mock/commands/mock_clearing.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClearingReport summarises one clearing run.
type ClearingReport struct {
	Tick      time.Time
	Cleared   int
	Extended  int
	Closed    int
	Purchases []*purchase.Purchase
	Warnings  []string
	// Skipped is set when another run already holds this tick.
	Skipped bool
}

type ClearingCommands interface {
	Clear(ctx context.Context, now time.Time) (*ClearingReport, error)
}

type clearingUseCaseImpl struct {
	uow      shared.UnitOfWork
	once     shared.OnceStore
	notifier shared.WinnerNotifier
	market   config.MarketConfig
}

func NewClearingUseCase(uow shared.UnitOfWork, once shared.OnceStore, notifier shared.WinnerNotifier, market config.MarketConfig) ClearingCommands {
	return &clearingUseCaseImpl{uow: uow, once: once, notifier: notifier, market: market}
}

type clearOutcome struct {
	winners  []auction.Fill
	bought   []*purchase.Purchase
	closed   bool
	extended bool
}

// Clear settles every auction whose end is at or before the tick containing
// now. Auctions from missed ticks are picked up as well.
func (uc *clearingUseCaseImpl) Clear(ctx context.Context, now time.Time) (*ClearingReport, error) {
	tick := auction.TickOf(now, uc.market.ClearingTick)
	report := &ClearingReport{Tick: tick}

	leaseKey := fmt.Sprintf("clearing:tick:%d", tick.Unix())
	claimed, err := uc.once.Claim(ctx, leaseKey, uc.market.ClearingTick)
	switch {
	case err != nil:
		slog.Warn("clearing lease unavailable, clearing anyway", "tick", tick, "error", err.Error())
		report.Warnings = append(report.Warnings, "lease unavailable: "+err.Error())
	case !claimed:
		slog.Info("clearing tick already taken", "tick", tick)
		report.Skipped = true
		return report, nil
	}

	ids, err := uc.uow.CommandReads().DueAuctionIDs(ctx, tick)
	if err != nil {
		uc.releaseLease(ctx, leaseKey, claimed)
		return nil, err
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			uc.releaseLease(ctx, leaseKey, claimed)
			return report, err
		}
		out, err := uc.clearOne(ctx, id, tick, now)
		if err != nil {
			slog.Error("failed to clear auction", "auction_id", id.String(), "error", err.Error())
			report.Warnings = append(report.Warnings, fmt.Sprintf("auction %s: %v", id, err))
			continue
		}
		if out == nil {
			continue
		}
		report.Cleared++
		if out.closed {
			report.Closed++
		}
		if out.extended {
			report.Extended++
		}
		report.Purchases = append(report.Purchases, out.bought...)
		report.Warnings = append(report.Warnings, uc.notifyWinners(ctx, out)...)
	}

	slog.Info("clearing finished",
		"tick", tick,
		"cleared", report.Cleared,
		"closed", report.Closed,
		"extended", report.Extended,
		"purchases", len(report.Purchases),
		"warnings", len(report.Warnings))
	return report, nil
}

// releaseLease gives the tick back after a failed run so a retry in the
// same tick is not skipped. Auctions already settled are no longer due.
func (uc *clearingUseCaseImpl) releaseLease(ctx context.Context, key string, claimed bool) {
	if !claimed {
		return
	}
	if err := uc.once.Release(context.WithoutCancel(ctx), key); err != nil {
		slog.Warn("failed to release clearing lease", "key", key, "error", err.Error())
	}
}

// clearOne runs a single auction under its row lock. It returns nil when the
// auction is gone or no longer due.
func (uc *clearingUseCaseImpl) clearOne(ctx context.Context, id uuid.UUID, tick, now time.Time) (*clearOutcome, error) {
	var out *clearOutcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = nil
		a, derr := tx.Auctions().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			if errs.Is(derr, errs.ErrAuctionNotFound) {
				return nil
			}
			return derr
		}
		if !a.IsDue(tick) {
			return nil
		}

		bids, derr := tx.Bids().ListOpen(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		alloc := auction.Allocate(bids, a.QuantityAvailable(), auction.BidOrder(uc.market.ClearingBidOrder))

		res := &clearOutcome{winners: alloc.Winners}
		for _, fill := range alloc.Winners {
			p, perr := purchase.NewAuctionPurchase(fill.Bid.Bidder(), a.Listing(), fill.Quantity, fill.Bid.Price(), now)
			if perr != nil {
				return perr
			}
			if derr = tx.Purchases().Create(ctx, tx.DB(), p); derr != nil {
				return derr
			}
			if derr = tx.Bids().MarkStatus(ctx, tx.DB(), fill.Bid.ID(), auction.BidWon); derr != nil {
				return derr
			}
			res.bought = append(res.bought, p)
		}
		for _, lost := range alloc.Losers {
			if derr = tx.Bids().MarkStatus(ctx, tx.DB(), lost.ID(), auction.BidOutbid); derr != nil {
				return derr
			}
		}

		if alloc.FullyAllocated() {
			if derr = tx.Auctions().Delete(ctx, tx.DB(), id); derr != nil {
				return derr
			}
			res.closed = true
		} else {
			if derr = a.Extend(alloc.Remaining, auction.EndAfter(tick, uc.market.AuctionExtension)); derr != nil {
				return derr
			}
			if derr = tx.Auctions().SaveExtension(ctx, tx.DB(), a); derr != nil {
				return derr
			}
			res.extended = true
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *clearingUseCaseImpl) notifyWinners(ctx context.Context, out *clearOutcome) []string {
	var warnings []string
	for i, fill := range out.winners {
		p := out.bought[i]
		email := fill.Bid.Bidder().Email()
		subject := "You won an auction"
		body := fmt.Sprintf("%d x %s %s %s (%s) at %s each, total %s",
			p.Quantity(), p.Listing().Winery, p.Listing().Variety, p.Listing().Year,
			p.Listing().Region, p.UnitPrice().String(), p.Total().String())

		if err := uc.notifier.NotifyWinner(ctx, email, subject, body); err != nil {
			slog.Warn("failed to notify auction winner",
				"bid_id", fill.Bid.ID().String(),
				"error", err.Error())
			warnings = append(warnings, fmt.Sprintf("notify %q: %v", email, err))
		}
	}
	return warnings
}
