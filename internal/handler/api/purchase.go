package api

import (
	"net/http"

	reqdto "cellar-market/internal/handler/dto/request"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/handler/httperr"
	"cellar-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	q             queries.PurchaseQueries
	notifications queries.NotificationQueries
}

func NewPurchaseHandler(q queries.PurchaseQueries, notifications queries.NotificationQueries) *PurchaseHandler {
	return &PurchaseHandler{q: q, notifications: notifications}
}

// @Summary Purchase history
// @Description The caller's purchases, newest first, paged by cursor
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PurchasePageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	var q reqdto.CursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, next, err := h.q.ListByBuyer(c.Request.Context(), s.ID(), q.Cursor(), q.Limit)
	if err != nil {
		abortWithDomainError(c, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPurchasePage(views, next))
}

// @Summary Notifications
// @Description Auction notifications addressed to the caller's email
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} httperr.Response
// @Router /api/notifications [get]
func (h *PurchaseHandler) Notifications(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	views, err := h.notifications.ListForRecipient(c.Request.Context(), s.Email())
	if err != nil {
		abortWithDomainError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}
