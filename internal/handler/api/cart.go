package api

import (
	"net/http"

	"cellar-market/internal/domain/listing"
	reqdto "cellar-market/internal/handler/dto/request"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/handler/httperr"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds            commands.CartCommands
	checkout        commands.CheckoutCommands
	q               queries.CartQueries
	defaultCategory string
}

func NewCartHandler(cmds commands.CartCommands, checkout commands.CheckoutCommands, q queries.CartQueries, cfg config.Config) *CartHandler {
	return &CartHandler{cmds: cmds, checkout: checkout, q: q, defaultCategory: cfg.Market.DefaultCategory}
}

// @Summary View cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	view, err := h.q.View(c.Request.Context(), s.ID())
	if err != nil {
		abortWithDomainError(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add to cart
// @Description Add a listing to the cart. Adding the same listing again merges the lines.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Cart line"
// @Success 200 {object} resdto.AddToCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/lines [post]
func (h *CartHandler) Add(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddToCart(c.Request.Context(), s, req.ToWineInput(h.defaultCategory), req.Quantity)
	if err != nil {
		abortWithDomainError(c, err, "Add to cart failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddToCartResult(result))
}

// @Summary Remove cart line
// @Tags cart
// @Security BearerAuth
// @Param identity path string true "Listing identity"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/lines/{identity} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveFromCart(c.Request.Context(), s, listing.Identity(c.Param("identity"))); err != nil {
		abortWithDomainError(c, err, "Remove from cart failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout
// @Description Buy every line in the cart. On insufficient stock the cart is discarded and the detail lists what was already bought.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	s, ok := currentShopper(c)
	if !ok {
		return
	}
	result, err := h.checkout.Checkout(c.Request.Context(), s)
	if err != nil {
		abortWithDomainError(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
