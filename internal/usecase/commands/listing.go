package commands

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/commands/mock_listing.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cellar-market/internal/domain/listing"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// WineInput is the descriptive part of a listing as submitted by a caller.
type WineInput struct {
	Category string
	Country  string
	Region   string
	Variety  string
	Winery   string
	Year     string
	Price    decimal.Decimal
}

func (in WineInput) Snapshot() (listing.Snapshot, error) {
	return listing.NewSnapshot(in.Category, in.Country, in.Region, in.Variety, in.Winery, in.Year, in.Price)
}

type CreateListingInput struct {
	WineInput
	Quantity int
}

type CreateListingResult struct {
	Category          string
	Identity          listing.Identity
	QuantityAvailable int
}

type ListingCommands interface {
	CreateListing(ctx context.Context, in CreateListingInput) (*CreateListingResult, error)
}

type listingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingUseCase(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingUseCaseImpl{uow: uow, clock: clk}
}

// CreateListing stores a new listing. Submitting the same wine at the same
// price again adds to the existing quantity.
func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, in CreateListingInput) (*CreateListingResult, error) {
	wine, err := listing.NewWine(in.Country, in.Region, in.Variety, in.Winery, in.Year)
	if err != nil {
		return nil, err
	}
	l, err := listing.NewListing(in.Category, wine, in.Price, in.Quantity, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var stored *listing.Listing
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		stored, derr = tx.Listings().Upsert(ctx, tx.DB(), l)
		return derr
	})
	if err != nil {
		return nil, err
	}

	slog.Info("listing stored",
		"category", stored.Category(),
		"identity", stored.Identity().String(),
		"quantity", stored.QuantityAvailable())

	return &CreateListingResult{
		Category:          stored.Category(),
		Identity:          stored.Identity(),
		QuantityAvailable: stored.QuantityAvailable(),
	}, nil
}
