package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/mock_cart.go -package=commandsmock

import (
	"context"

	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddToCartResult struct {
	LineID   uuid.UUID
	Identity listing.Identity
	Quantity int
	// Clamped is set when the merged quantity was cut to what the listing holds.
	Clamped bool
}

type CartCommands interface {
	AddToCart(ctx context.Context, owner shopper.Shopper, item WineInput, quantity int) (*AddToCartResult, error)
	RemoveFromCart(ctx context.Context, owner shopper.Shopper, identity listing.Identity) error
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartUseCase(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{uow: uow, clock: clk}
}

func (uc *cartUseCaseImpl) AddToCart(ctx context.Context, owner shopper.Shopper, item WineInput, quantity int) (*AddToCartResult, error) {
	if err := owner.Require(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	snap, err := item.Snapshot()
	if err != nil {
		return nil, err
	}

	var result *AddToCartResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stock, derr := tx.Reads().ListingByKey(ctx, snap.Category, snap.Identity)
		if derr != nil {
			return derr
		}

		existing, derr := tx.CartLines().FindByIdentity(ctx, tx.DB(), owner, snap.Identity)
		switch {
		case derr == nil:
			result, derr = mergeLine(ctx, tx, existing, quantity, stock.QuantityAvailable)
			return derr
		case errs.Is(derr, errs.ErrCartLineNotFound):
			line, lerr := cart.NewLine(owner, stock.Listing, quantity, uc.clock.Now())
			if lerr != nil {
				return lerr
			}
			derr = tx.CartLines().Create(ctx, tx.DB(), line)
			if errs.Is(derr, errs.ErrCartLineExists) {
				// a concurrent add committed the line first
				if existing, derr = tx.CartLines().FindByIdentity(ctx, tx.DB(), owner, snap.Identity); derr != nil {
					return derr
				}
				result, derr = mergeLine(ctx, tx, existing, quantity, stock.QuantityAvailable)
				return derr
			}
			if derr != nil {
				return derr
			}
			result = &AddToCartResult{LineID: line.ID(), Identity: line.Identity(), Quantity: line.Quantity()}
			return nil
		default:
			return derr
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func mergeLine(ctx context.Context, tx shared.Tx, existing *cart.Line, quantity, available int) (*AddToCartResult, error) {
	clamped, err := existing.Merge(quantity, available)
	if err != nil {
		return nil, err
	}
	if err := tx.CartLines().UpdateQuantity(ctx, tx.DB(), existing); err != nil {
		return nil, err
	}
	return &AddToCartResult{LineID: existing.ID(), Identity: existing.Identity(), Quantity: existing.Quantity(), Clamped: clamped}, nil
}

func (uc *cartUseCaseImpl) RemoveFromCart(ctx context.Context, owner shopper.Shopper, identity listing.Identity) error {
	if err := owner.Require(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, derr := tx.CartLines().DeleteByIdentity(ctx, tx.DB(), owner, identity)
		if derr != nil {
			return derr
		}
		if !deleted {
			return errs.ErrCartLineNotFound
		}
		return nil
	})
}
