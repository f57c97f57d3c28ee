//go:build e2e

package market_test

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/tests/common/builder"
	"cellar-market/tests/common/dbtest"
	"cellar-market/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fanOut runs fn n times at once and returns the status codes in call order.
func fanOut(n int, fn func(i int) int) []int {
	codes := make([]int, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			codes[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()
	return codes
}

func countCode(codes []int, code int) int {
	n := 0
	for _, c := range codes {
		if c == code {
			n++
		}
	}
	return n
}

func (s *MarketTestSuite) openAuction(b *builder.ListingBuilder) (resdto.CreateListingResponse, resdto.AuctionResponse) {
	s.T().Helper()
	_, seller := s.JWT.Shopper(s.T(), "seller@example.com")
	_, buyer := s.JWT.Shopper(s.T(), "buyer@example.com")
	listing := s.createListing(seller, b.WithQuantity(30))
	s.addToCart(buyer, b, 28)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout", nil, buyer)
	var checkout resdto.CheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &checkout)
	require.Len(s.T(), checkout.AuctionsOpened, 1)

	return listing, s.auction(checkout.AuctionsOpened[0])
}

func (s *MarketTestSuite) auction(id string) resdto.AuctionResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auctions/"+id, nil, "")
	var a resdto.AuctionResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &a)
	return a
}

func (s *MarketTestSuite) TestConcurrentCheckout() {
	s.Run("racing checkouts never sell more than the stock", func() {
		_, seller := s.JWT.Shopper(s.T(), "seller@example.com")
		b := builder.NewListingBuilder().WithPrice(decimal.NewFromInt(10)).WithQuantity(30)
		listing := s.createListing(seller, b)

		const buyers = 10
		tokens := make([]string, buyers)
		for i := range buyers {
			_, tokens[i] = s.JWT.Shopper(s.T(), fmt.Sprintf("buyer%d@example.com", i))
			s.addToCart(tokens[i], b, 4)
		}

		codes := fanOut(buyers, func(i int) int {
			return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout", nil, tokens[i]).Code
		})

		sold := countCode(codes, http.StatusCreated)
		assert.Equal(s.T(), buyers, sold+countCode(codes, http.StatusConflict), "codes: %v", codes)

		purchased := dbtest.PurchasedQuantity(s.T(), s.DB, listing.Identity, "checkout")
		assert.Equal(s.T(), 4*sold, purchased)
		assert.LessOrEqual(s.T(), purchased, 30)

		listed, onSale := dbtest.ListingQuantity(s.T(), s.DB, listing.Category, listing.Identity)
		auctioned, open := dbtest.AuctionQuantity(s.T(), s.DB, listing.Category, listing.Identity)
		assert.Equal(s.T(), 30, purchased+listed+auctioned, "units must be conserved")

		// 30 -> 26 -> ... -> 2, which is under the low stock line at price 10
		assert.Equal(s.T(), 7, sold)
		assert.False(s.T(), onSale)
		assert.True(s.T(), open)
		assert.Equal(s.T(), 2, auctioned)
	})
}

func (s *MarketTestSuite) TestConcurrentBidsAndClearing() {
	s.Run("bids racing a clearing run are each settled once", func() {
		listing, auction := s.openAuction(builder.NewListingBuilder().WithPrice(decimal.NewFromInt(10)))
		auctionID := uuid.MustParse(auction.ID)
		admin := s.AdminToken()

		const bidders = 6
		tokens := make([]string, bidders)
		for i := range bidders {
			_, tokens[i] = s.JWT.Shopper(s.T(), fmt.Sprintf("bidder%d@example.com", i))
		}

		s.Clock.Set(auction.EndsAt.Add(10 * time.Minute))

		// the last slot runs the clearing
		codes := fanOut(bidders+1, func(i int) int {
			if i == bidders {
				return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/clearing", nil, admin).Code
			}
			return httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
				"/api/auctions/"+auction.ID+"/bids",
				map[string]any{"price": fmt.Sprintf("%d", 20+i), "quantity": 1}, tokens[i]).Code
		})

		require.Equal(s.T(), http.StatusOK, codes[bidders])
		bidCodes := codes[:bidders]
		accepted := countCode(bidCodes, http.StatusCreated)
		assert.Equal(s.T(), bidders, accepted+countCode(bidCodes, http.StatusNotFound), "codes: %v", bidCodes)

		s.assertAuctionSettled(listing, auctionID, accepted)

		// a later tick settles whatever arrived after the first run
		if remaining, open := dbtest.AuctionQuantity(s.T(), s.DB, listing.Category, listing.Identity); open {
			s.Clock.Set(s.auction(auction.ID).EndsAt.Add(10 * time.Minute))
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/clearing", nil, admin)
			require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

			s.assertAuctionSettled(listing, auctionID, accepted)
			assert.Equal(s.T(), min(2, accepted), dbtest.PurchasedQuantity(s.T(), s.DB, listing.Identity, "auction"),
				"%d units were left after the first run", remaining)
			assert.Zero(s.T(), dbtest.CountBids(s.T(), s.DB, auctionID, "open"))
		}
	})
}

// assertAuctionSettled checks that every unit is either sold or still on
// auction and that every accepted bid is accounted for exactly once.
func (s *MarketTestSuite) assertAuctionSettled(listing resdto.CreateListingResponse, auctionID uuid.UUID, accepted int) {
	s.T().Helper()

	purchased := dbtest.PurchasedQuantity(s.T(), s.DB, listing.Identity, "auction")
	remaining, open := dbtest.AuctionQuantity(s.T(), s.DB, listing.Category, listing.Identity)
	assert.Equal(s.T(), 2, purchased+remaining, "units must be conserved")

	won := dbtest.CountBids(s.T(), s.DB, auctionID, "won")
	outbid := dbtest.CountBids(s.T(), s.DB, auctionID, "outbid")
	pending := dbtest.CountBids(s.T(), s.DB, auctionID, "open")
	assert.Equal(s.T(), purchased, won, "one unit per winning bid")
	assert.Equal(s.T(), accepted, won+outbid+pending)
	if !open {
		assert.Zero(s.T(), pending, "a closed auction keeps no open bids")
	}
}

func (s *MarketTestSuite) TestConcurrentAddToCart() {
	s.Run("racing first adds by one shopper end as one line", func() {
		_, seller := s.JWT.Shopper(s.T(), "seller@example.com")
		buyerID, buyer := s.JWT.Shopper(s.T(), "buyer@example.com")
		b := builder.NewListingBuilder().WithQuantity(30)
		listing := s.createListing(seller, b)

		const adds = 8
		codes := fanOut(adds, func(int) int {
			return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/lines",
				b.BuildAddToCartRequestDTO(2), buyer).Code
		})

		assert.Equal(s.T(), adds, countCode(codes, http.StatusOK), "codes: %v", codes)
		lines, quantity := dbtest.CartLines(s.T(), s.DB, buyerID, listing.Identity)
		assert.Equal(s.T(), 1, lines)
		assert.Equal(s.T(), 2*adds, quantity)
	})
}
