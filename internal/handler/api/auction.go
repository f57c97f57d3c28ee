package api

import (
	"log/slog"
	"net/http"

	reqdto "cellar-market/internal/handler/dto/request"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/handler/httperr"
	"cellar-market/internal/handler/middleware"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionHandler struct {
	bids     commands.BidCommands
	clearing commands.ClearingCommands
	q        queries.AuctionQueries
	clock    clock.Clock
}

func NewAuctionHandler(bids commands.BidCommands, clearing commands.ClearingCommands, q queries.AuctionQueries, clk clock.Clock) *AuctionHandler {
	return &AuctionHandler{bids: bids, clearing: clearing, q: q, clock: clk}
}

// @Summary List auctions
// @Description Open auctions in a category, closest to clearing first
// @Tags auctions
// @Produce json
// @Param category query string false "Category (defaults to the configured category)"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.AuctionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auctions [get]
func (h *AuctionHandler) List(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.ListOpen(c.Request.Context(), q.Category, q.Page())
	if err != nil {
		abortWithDomainError(c, err, "Failed to list auctions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuctionViews(views))
}

// @Summary Get auction
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auctions/{id} [get]
func (h *AuctionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction ID format", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err, "Failed to load auction")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuctionView(view))
}

// @Summary Place bid
// @Description Bid for units of an open auction. A repeated Idempotency-Key is rejected.
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.PlaceBidRequest true "Bid"
// @Success 201 {object} resdto.BidResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/auctions/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction ID format", nil)
		return
	}
	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.bids.PlaceBid(c.Request.Context(), s, req.ToInput(id, c.GetHeader(middleware.IdempotencyKeyHeader)))
	if err != nil {
		abortWithDomainError(c, err, "Place bid failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPlaceBidResult(result))
}

// @Summary Run clearing
// @Description Clear every auction due at the current tick. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClearingReportResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/clearing [post]
func (h *AuctionHandler) Clear(c *gin.Context) {
	report, err := h.clearing.Clear(c.Request.Context(), h.clock.Now())
	if err != nil {
		abortWithDomainError(c, err, "Clearing failed")
		return
	}
	slog.Info("manual clearing finished",
		"tick", report.Tick,
		"cleared", report.Cleared,
		"skipped", report.Skipped)
	c.JSON(http.StatusOK, resdto.FromClearingReport(report))
}
