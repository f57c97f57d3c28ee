package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cellar-market/internal/handler/api"
	"cellar-market/internal/handler/middleware"
	"cellar-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Listing  *api.ListingHandler
	Cart     *api.CartHandler
	Purchase *api.PurchaseHandler
	Auction  *api.AuctionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/listings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Listing.List, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodGet, Path: "/:category/:identity", Handler: h.Listing.Get, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPost, Path: "", Handler: h.Listing.Create, Mw: []gin.HandlerFunc{requireAuth}},
		})

		cart := apiGroup.Group("")
		cart.Use(requireAuth)
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.View},
				{Method: http.MethodPost, Path: "/cart/lines", Handler: h.Cart.Add},
				{Method: http.MethodDelete, Path: "/cart/lines/:identity", Handler: h.Cart.Remove},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
				{Method: http.MethodGet, Path: "/purchases", Handler: h.Purchase.List},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Purchase.Notifications},
			})
		}

		addRoutes(apiGroup.Group("/auctions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Auction.List, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Auction.Get, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPost, Path: "/:id/bids", Handler: h.Auction.PlaceBid, Mw: []gin.HandlerFunc{requireAuth}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/clearing", Handler: h.Auction.Clear},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
