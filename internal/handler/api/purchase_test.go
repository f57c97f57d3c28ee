//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cellar-market/internal/handler/api"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/usecase/queries"
	"cellar-market/tests/common/httptest"
	queriesmock "cellar-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockQueries       *queriesmock.MockPurchaseQueries
	mockNotifications *queriesmock.MockNotificationQueries
	handler           *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPurchaseQueries(s.mockCtrl)
	s.mockNotifications = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockQueries, s.mockNotifications)

	s.router.Use(stubAuth)
	s.router.GET("/purchases", s.handler.List)
	s.router.GET("/notifications", s.handler.Notifications)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestList() {
	view := &queries.PurchaseView{
		ID:        uuid.New(),
		Category:  "red",
		Identity:  "abc",
		ListPrice: decimal.NewFromInt(100),
		UnitPrice: decimal.NewFromInt(60),
		Quantity:  4,
		Source:    "auction",
		CreatedAt: time.Date(2026, 1, 10, 15, 7, 0, 0, time.UTC),
	}

	s.Run("success: first page returns a next cursor", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), testShopperID, (*queries.Cursor)(nil), 1).
			Return([]*queries.PurchaseView{view}, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases?limit=1", nil, testToken)

		var body resdto.PurchasePageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("240", body.Items[0].Total.String())
		s.Equal("auction", body.Items[0].Source)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("success: cursor is passed through", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), testShopperID, &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.PurchaseView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases?after=abc", nil, testToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request for a malformed cursor", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases?after=bogus", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *PurchaseHandlerTestSuite) TestNotifications() {
	s.Run("success: lists notifications for the caller's email", func() {
		s.mockNotifications.EXPECT().ListForRecipient(gomock.Any(), testEmail).
			Return([]*queries.NotificationJobView{{
				ID:      uuid.New(),
				Kind:    "auction.won",
				Status:  "queued",
				Payload: []byte(`{"email":"shopper@example.com"}`),
			}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, testToken)

		var body []resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("auction.won", body[0].Kind)
		s.JSONEq(`{"email":"shopper@example.com"}`, string(body[0].Payload))
	})
}
