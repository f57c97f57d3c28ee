package commands

//go:generate mockgen -source=bid.go -destination=../../../tests/mock/commands/mock_bid.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const bidKeyTTL = 24 * time.Hour

type PlaceBidInput struct {
	AuctionID uuid.UUID
	Price     decimal.Decimal
	Quantity  int
	// IdempotencyKey is optional. A key reused within a day is rejected.
	IdempotencyKey string
}

type PlaceBidResult struct {
	BidID      uuid.UUID
	AuctionID  uuid.UUID
	HighestBid decimal.Decimal
	PlacedAt   time.Time
}

type BidCommands interface {
	PlaceBid(ctx context.Context, bidder shopper.Shopper, in PlaceBidInput) (*PlaceBidResult, error)
}

type bidUseCaseImpl struct {
	uow   shared.UnitOfWork
	once  shared.OnceStore
	clock clock.Clock
}

func NewBidUseCase(uow shared.UnitOfWork, once shared.OnceStore, clk clock.Clock) BidCommands {
	return &bidUseCaseImpl{uow: uow, once: once, clock: clk}
}

func (uc *bidUseCaseImpl) PlaceBid(ctx context.Context, bidder shopper.Shopper, in PlaceBidInput) (*PlaceBidResult, error) {
	placement, err := auction.NewPlacement(in.AuctionID, bidder, in.Price, in.Quantity, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	key := ""
	if in.IdempotencyKey != "" {
		key = "bid:" + bidder.ID().String() + ":" + in.IdempotencyKey
		if err := uc.claim(ctx, key); err != nil {
			return nil, err
		}
	}

	var result *PlaceBidResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Auctions().FindForUpdate(ctx, tx.DB(), in.AuctionID)
		if derr != nil {
			return derr
		}
		if derr = tx.Bids().Create(ctx, tx.DB(), placement); derr != nil {
			return derr
		}
		a.RecordBid(placement.Price())
		if derr = tx.Auctions().UpdateHighestBid(ctx, tx.DB(), a); derr != nil {
			return derr
		}
		result = &PlaceBidResult{
			BidID:      placement.ID(),
			AuctionID:  a.ID(),
			HighestBid: a.HighestBid(),
			PlacedAt:   placement.PlacedAt(),
		}
		return nil
	})
	if err != nil {
		if key != "" {
			if rerr := uc.once.Release(ctx, key); rerr != nil {
				slog.Warn("failed to release bid key", "error", rerr.Error())
			}
		}
		return nil, err
	}

	slog.Info("bid placed",
		"auction_id", result.AuctionID.String(),
		"bid_id", result.BidID.String(),
		"quantity", placement.Quantity())
	return result, nil
}

// claim reserves the idempotency key. If the store is unreachable the bid
// goes through without deduplication.
func (uc *bidUseCaseImpl) claim(ctx context.Context, key string) error {
	ok, err := uc.once.Claim(ctx, key, bidKeyTTL)
	if err != nil {
		slog.Warn("bid idempotency store unavailable", "error", err.Error())
		return nil
	}
	if !ok {
		return errs.ErrDuplicateBid
	}
	return nil
}
