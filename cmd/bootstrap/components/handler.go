package components

import (
	"cellar-market/internal/handler"
	"cellar-market/internal/handler/api"
	"cellar-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewCartHandler,
		api.NewPurchaseHandler,
		api.NewAuctionHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(l *api.ListingHandler, c *api.CartHandler, p *api.PurchaseHandler, a *api.AuctionHandler) handler.Handlers {
	return handler.Handlers{Listing: l, Cart: c, Purchase: p, Auction: a}
}
