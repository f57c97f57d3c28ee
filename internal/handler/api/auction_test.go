//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/handler/api"
	reqdto "cellar-market/internal/handler/dto/request"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"
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

type AuctionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBids     *commandsmock.MockBidCommands
	mockClearing *commandsmock.MockClearingCommands
	mockQueries  *queriesmock.MockAuctionQueries
	clock        *clock.MockClock
	handler      *api.AuctionHandler
}

func (s *AuctionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBids = commandsmock.NewMockBidCommands(s.mockCtrl)
	s.mockClearing = commandsmock.NewMockClearingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAuctionQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 1, 10, 15, 7, 0, 0, time.UTC))
	s.handler = api.NewAuctionHandler(s.mockBids, s.mockClearing, s.mockQueries, s.clock)

	s.router.Use(stubAuth)
	s.router.GET("/auctions", s.handler.List)
	s.router.GET("/auctions/:id", s.handler.Get)
	s.router.POST("/auctions/:id/bids", s.handler.PlaceBid)
	s.router.POST("/admin/clearing", s.handler.Clear)
}

func (s *AuctionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuctionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuctionHandlerTestSuite))
}

func (s *AuctionHandlerTestSuite) auctionView(id uuid.UUID) *queries.AuctionView {
	return &queries.AuctionView{
		ID:                id,
		Category:          "red",
		Identity:          "abc",
		Winery:            "Chateau Test",
		ListPrice:         decimal.NewFromInt(100),
		QuantityAvailable: 2,
		HighestBid:        decimal.NewFromInt(60),
		OpenBids:          3,
		StartedAt:         time.Date(2026, 1, 10, 10, 20, 0, 0, time.UTC),
		EndsAt:            time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *AuctionHandlerTestSuite) TestList() {
	s.Run("success: returns open auctions", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), "red", queries.Page{Limit: 10}).
			Return([]*queries.AuctionView{s.auctionView(uuid.New())}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions?category=red&limit=10", nil, "")

		var body []resdto.AuctionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(3, body[0].OpenBids)
		s.Equal("60", body[0].HighestBid.String())
	})
}

func (s *AuctionHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns 200 OK with AuctionResponse", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(s.auctionView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+id.String(), nil, "")

		var body resdto.AuctionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id.String(), body.ID)
		s.True(body.EndsAt.Equal(time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid auction ID format")
	})

	s.Run("error: 404 Not Found for missing auction", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, queries.ErrAuctionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Auction not found")
	})
}

// ================================================================================
// TestPlaceBid
// ================================================================================

func (s *AuctionHandlerTestSuite) TestPlaceBid() {
	id := uuid.New()
	url := "/auctions/" + id.String() + "/bids"
	reqBody := reqdto.PlaceBidRequest{Price: decimal.NewFromInt(55), Quantity: 2}
	placedAt := s.clock.Now()

	s.Run("success: forwards the idempotency key", func() {
		s.mockBids.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, bidder shopper.Shopper, in commands.PlaceBidInput) (*commands.PlaceBidResult, error) {
				s.Equal(testShopperID, bidder.ID())
				s.Equal(id, in.AuctionID)
				s.Equal(2, in.Quantity)
				s.Equal("55", in.Price.String())
				s.Equal("retry-1", in.IdempotencyKey)
				return &commands.PlaceBidResult{BidID: uuid.New(), AuctionID: id, HighestBid: decimal.NewFromInt(55), PlacedAt: placedAt}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": " retry-1 "}, testToken)

		var body resdto.BidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body.AuctionID)
		s.Equal("55", body.HighestBid.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "duplicate key", commandsError: errs.ErrDuplicateBid, expectedStatus: http.StatusConflict, expectedMsg: "Bid already submitted"},
			{name: "auction gone", commandsError: errs.Mark(errors.New("no rows"), errs.ErrAuctionNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Auction not found"},
			{name: "non-positive price", commandsError: errs.ErrInvalidPrice, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Price must be positive"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Place bid failed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBids.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestClear
// ================================================================================

func (s *AuctionHandlerTestSuite) TestClear() {
	s.Run("success: runs clearing at the clock's time", func() {
		tick := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
		s.mockClearing.EXPECT().Clear(gomock.Any(), s.clock.Now()).
			Return(&commands.ClearingReport{Tick: tick, Cleared: 2, Extended: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/clearing", nil, testToken)

		var body resdto.ClearingReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Cleared)
		s.Equal(1, body.Extended)
		s.False(body.Skipped)
		s.NotNil(body.Warnings)
		s.True(body.Tick.Equal(tick))
	})

	s.Run("error: 500 when clearing fails", func() {
		s.mockClearing.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool closed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/clearing", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Clearing failed")
	})
}
