//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/handler/api"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"
	"cellar-market/tests/common/builder"
	"cellar-market/tests/common/httptest"
	"cellar-market/tests/common/testutil"
	commandsmock "cellar-market/tests/mock/commands"
	queriesmock "cellar-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCart     *commandsmock.MockCartCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCart = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCart, s.mockCheckout, s.mockQueries, config.NewTestConfig())

	s.router.Use(stubAuth)
	s.router.GET("/cart", s.handler.View)
	s.router.POST("/cart/lines", s.handler.Add)
	s.router.DELETE("/cart/lines/:identity", s.handler.Remove)
	s.router.POST("/checkout", s.handler.Checkout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) shopper() shopper.Shopper {
	sh, err := shopper.New(testShopperID, testEmail)
	s.Require().NoError(err)
	return sh
}

// ================================================================================
// TestView
// ================================================================================

func (s *CartHandlerTestSuite) TestView() {
	s.Run("success: returns lines and total", func() {
		view := &queries.CartView{
			Lines: []*queries.CartLineView{
				{ID: uuid.New(), Category: "red", Identity: "abc", Price: decimal.NewFromInt(10), Quantity: 2, Subtotal: decimal.NewFromInt(20)},
				{ID: uuid.New(), Category: "red", Identity: "def", Price: decimal.RequireFromString("7.5"), Quantity: 1, Subtotal: decimal.RequireFromString("7.5")},
			},
			TotalCost: decimal.RequireFromString("27.5"),
		}
		s.mockQueries.EXPECT().View(gomock.Any(), testShopperID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, testToken)

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Lines, 2)
		s.Equal("27.5", body.TotalCost.String())
		s.Equal("abc", body.Lines[0].Identity)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestAdd
// ================================================================================

func (s *CartHandlerTestSuite) TestAdd() {
	b := builder.NewListingBuilder()
	reqBody := b.BuildAddToCartRequestDTO(3)
	identity := b.BuildSnapshot().Identity

	s.Run("success: returns the merged line", func() {
		s.mockCart.EXPECT().AddToCart(gomock.Any(), s.shopper(), gomock.Any(), 3).
			DoAndReturn(func(_ any, _ shopper.Shopper, item commands.WineInput, _ int) (*commands.AddToCartResult, error) {
				s.Equal("Merlot", item.Variety)
				s.Equal("red", item.Category)
				return &commands.AddToCartResult{LineID: uuid.New(), Identity: identity, Quantity: 5, Clamped: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/lines", reqBody, testToken)

		var body resdto.AddToCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(identity.String(), body.Identity)
		s.Equal(5, body.Quantity)
		s.True(body.Clamped)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for name, mutate := range map[string]func(map[string]any){
			"missing variety":  testutil.Field("variety", nil),
			"missing quantity": testutil.Field("quantity", nil),
			"zero quantity":    testutil.Field("quantity", 0),
		} {
			s.Run(name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/lines", requestMap, testToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 404 Not Found when the listing does not exist", func() {
		s.mockCart.EXPECT().AddToCart(gomock.Any(), gomock.Any(), gomock.Any(), 3).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrNoSuchListing)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/lines", reqBody, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/lines", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *CartHandlerTestSuite) TestRemove() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCart.EXPECT().RemoveFromCart(gomock.Any(), s.shopper(), listing.Identity("abc123")).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/abc123", nil, testToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found when the line is absent", func() {
		s.mockCart.EXPECT().RemoveFromCart(gomock.Any(), gomock.Any(), listing.Identity("abc123")).
			Return(errs.ErrCartLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/abc123", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *CartHandlerTestSuite) TestCheckout() {
	now := time.Date(2026, 1, 10, 11, 0, 0, 0, time.UTC)
	snap := builder.NewListingBuilder().BuildSnapshot()

	s.Run("success: returns purchases, total and opened auctions", func() {
		p, err := purchase.NewCheckoutPurchase(s.shopper(), snap, 3, now)
		s.Require().NoError(err)
		auctionID := uuid.New()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.shopper()).
			Return(&commands.CheckoutResult{Purchases: []*purchase.Purchase{p}, AuctionsOpened: []uuid.UUID{auctionID}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, testToken)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body.Purchases, 1)
		s.Equal("300", body.TotalCost.String())
		s.Equal("checkout", body.Purchases[0].Source)
		s.Equal([]string{auctionID.String()}, body.AuctionsOpened)
	})

	s.Run("error: 409 Conflict carries the failed line and settled purchases", func() {
		settled, err := purchase.NewCheckoutPurchase(s.shopper(), snap, 1, now)
		s.Require().NoError(err)
		line, err := cart.NewLine(s.shopper(), snap, 9, now)
		s.Require().NoError(err)
		stockErr := &commands.InsufficientStockError{Line: line, Available: 4, Settled: []*purchase.Purchase{settled}}
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, stockErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, testToken)
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
		s.Equal("insufficient_stock", resp.Error.Code)

		var body struct {
			Detail resdto.InsufficientStockDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(snap.Identity.String(), body.Detail.Identity)
		s.Equal(9, body.Detail.Requested)
		s.Equal(4, body.Detail.Available)
		s.Len(body.Detail.Settled, 1)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "empty cart", commandsError: errs.ErrEmptyCart, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Cart is empty"},
			{name: "bare insufficient stock", commandsError: errs.Wrap(errs.ErrInsufficientStock, "line"), expectedStatus: http.StatusConflict, expectedMsg: "Insufficient stock"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Checkout failed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
