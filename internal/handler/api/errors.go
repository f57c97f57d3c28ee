package api

import (
	"log/slog"
	"net/http"

	"cellar-market/internal/domain/shopper"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/handler/httperr"
	"cellar-market/internal/handler/middleware"
	"cellar-market/internal/pkg/errs"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type statusMapping struct {
	sentinel error
	status   int
	code     string
	message  string
}

var errorStatuses = []statusMapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated", "Unauthorized"},
	{errs.ErrMissingField, http.StatusUnprocessableEntity, "missing_field", "Required field is empty"},
	{errs.ErrInvalidQuantity, http.StatusUnprocessableEntity, "invalid_quantity", "Quantity must be positive"},
	{errs.ErrInvalidPrice, http.StatusUnprocessableEntity, "invalid_price", "Price must be positive"},
	{errs.ErrNoSuchListing, http.StatusNotFound, "listing_not_found", "Listing not found"},
	{queries.ErrListingNotFound, http.StatusNotFound, "listing_not_found", "Listing not found"},
	{errs.ErrCartLineNotFound, http.StatusNotFound, "cart_line_not_found", "Cart line not found"},
	{errs.ErrAuctionNotFound, http.StatusNotFound, "auction_not_found", "Auction not found"},
	{queries.ErrAuctionNotFound, http.StatusNotFound, "auction_not_found", "Auction not found"},
	{errs.ErrEmptyCart, http.StatusUnprocessableEntity, "empty_cart", "Cart is empty"},
	{errs.ErrDuplicateBid, http.StatusConflict, "duplicate_bid", "Bid already submitted"},
	{errs.ErrAuctionAlreadyOpen, http.StatusConflict, "auction_already_open", "Auction already open"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor", "Invalid cursor"},
	{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "storage_failure", "Storage failure"},
}

const codeInsufficientStock = "insufficient_stock"

// abortWithDomainError maps known sentinels to a status and falls back to 500.
func abortWithDomainError(c *gin.Context, err error, fallback string) {
	var stockErr *commands.InsufficientStockError
	if errs.As(err, &stockErr) {
		httperr.AbortWithCode(c, http.StatusConflict, err, codeInsufficientStock, "Insufficient stock", resdto.FromInsufficientStock(stockErr))
		return
	}
	if errs.Is(err, errs.ErrInsufficientStock) {
		httperr.AbortWithCode(c, http.StatusConflict, err, codeInsufficientStock, "Insufficient stock", nil)
		return
	}
	for _, m := range errorStatuses {
		if errs.Is(err, m.sentinel) {
			httperr.AbortWithCode(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	slog.Error("unmapped handler error",
		"request_id", middleware.GetRequestID(c),
		"route", c.FullPath(),
		"stack", errs.ExtractStackLines(err, 8))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

// currentShopper aborts with 401 when the request carries no verified shopper.
func currentShopper(c *gin.Context) (shopper.Shopper, bool) {
	s, ok := middleware.GetShopper(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return shopper.Guest(), false
	}
	return s, true
}
