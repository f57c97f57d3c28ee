package components

import (
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/usecase"
	"cellar-market/internal/usecase/commands"
	"cellar-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.MarketConfig {
		return cfg.Market
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewListingUseCase,
		commands.NewCartUseCase,
		commands.NewCheckoutUseCase,
		commands.NewBidUseCase,
		commands.NewClearingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.ListingReadStore, m config.MarketConfig) queries.ListingQueries {
			return queries.NewListingQueries(store, m.DefaultCategory)
		},
		func(store queries.AuctionReadStore, m config.MarketConfig) queries.AuctionQueries {
			return queries.NewAuctionQueries(store, m.DefaultCategory)
		},
		queries.NewCartQueries,
		queries.NewPurchaseQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
