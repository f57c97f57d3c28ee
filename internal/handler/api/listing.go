package api

import (
	"net/http"

	reqdto "cellar-market/internal/handler/dto/request"
	resdto "cellar-market/internal/handler/dto/response"
	"cellar-market/internal/handler/httperr"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds            commands.ListingCommands
	q               queries.ListingQueries
	defaultCategory string
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries, cfg config.Config) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q, defaultCategory: cfg.Market.DefaultCategory}
}

// @Summary Create listing
// @Description List a wine for sale. Listing the same wine at the same price again adds to its quantity.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.CreateListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	if _, ok := currentShopper(c); !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateListing(c.Request.Context(), req.ToInput(h.defaultCategory))
	if err != nil {
		abortWithDomainError(c, err, "Create listing failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateListingResult(result))
}

// @Summary List listings
// @Description List a category's listings, newest first
// @Tags listings
// @Produce json
// @Param category query string false "Category (defaults to the configured category)"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.ListByCategory(c.Request.Context(), q.Category, q.Page())
	if err != nil {
		abortWithDomainError(c, err, "Failed to list listings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param category path string true "Category"
// @Param identity path string true "Listing identity"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{category}/{identity} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("category"), c.Param("identity"))
	if err != nil {
		abortWithDomainError(c, err, "Failed to load listing")
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}
