//go:build unit

package commands_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/usecase/commands"
	"cellar-market/tests/common/builder"
	"cellar-market/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// 10:20 on a Saturday; auctions opened now end at 15:00.
var now0 = time.Date(2026, 1, 10, 10, 20, 0, 0, time.UTC)

type market struct {
	store    *fakeuow.Store
	once     *fakeuow.OnceStore
	notifier *fakeuow.Notifier
	clock    *clock.MockClock
	cfg      config.MarketConfig

	listings commands.ListingCommands
	cart     commands.CartCommands
	checkout commands.CheckoutCommands
	bids     commands.BidCommands
	clearing commands.ClearingCommands
}

func newMarket(t *testing.T, mutate ...func(*config.MarketConfig)) *market {
	t.Helper()
	cfg := config.NewTestMarketConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	require.NoError(t, cfg.Validate())

	m := &market{
		store:    fakeuow.New(),
		once:     fakeuow.NewOnceStore(),
		notifier: &fakeuow.Notifier{},
		clock:    clock.NewMockClock(now0),
		cfg:      cfg,
	}
	m.listings = commands.NewListingUseCase(m.store, m.clock)
	m.cart = commands.NewCartUseCase(m.store, m.clock)
	m.checkout = commands.NewCheckoutUseCase(m.store, cfg, m.clock)
	m.bids = commands.NewBidUseCase(m.store, m.once, m.clock)
	m.clearing = commands.NewClearingUseCase(m.store, m.once, m.notifier, cfg)
	return m
}

func wineInput(b *builder.ListingBuilder) commands.WineInput {
	return commands.WineInput{
		Category: b.Category,
		Country:  b.Country,
		Region:   b.Region,
		Variety:  b.Variety,
		Winery:   b.Winery,
		Year:     b.Year,
		Price:    b.Price,
	}
}

// stock lists b with its quantity and returns its identity.
func (m *market) stock(t *testing.T, b *builder.ListingBuilder) listing.Identity {
	t.Helper()
	res, err := m.listings.CreateListing(context.Background(), commands.CreateListingInput{
		WineInput: wineInput(b),
		Quantity:  b.Quantity,
	})
	require.NoError(t, err)
	return res.Identity
}

// add puts qty of b into who's cart, one second after the previous add so
// cart order is deterministic.
func (m *market) add(t *testing.T, who shopper.Shopper, b *builder.ListingBuilder, qty int) *commands.AddToCartResult {
	t.Helper()
	m.clock.Add(time.Second)
	res, err := m.cart.AddToCart(context.Background(), who, wineInput(b), qty)
	require.NoError(t, err)
	return res
}

func wine(price int64, qty int) *builder.ListingBuilder {
	return builder.NewListingBuilder().WithPrice(decimal.NewFromInt(price)).WithQuantity(qty)
}

func placeBid(auctionID uuid.UUID, price int64, qty int) commands.PlaceBidInput {
	return commands.PlaceBidInput{AuctionID: auctionID, Price: decimal.NewFromInt(price), Quantity: qty}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
