package components

import (
	"cellar-market/internal/infra/notify"
	"cellar-market/internal/infra/readstore"
	"cellar-market/internal/infra/repository"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/infra/uow"
	"cellar-market/internal/usecase/queries"
	"cellar-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingViewQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Cart
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CartViewQueries)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		// Purchase
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PurchaseViewQueries)),
		),
		fx.Annotate(
			readstore.NewPurchaseReadStore,
			fx.As(new(queries.PurchaseReadStore)),
		),
		// Auction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AuctionViewQueries)),
		),
		fx.Annotate(
			readstore.NewAuctionReadStore,
			fx.As(new(queries.AuctionReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

// Write repositories other than notifications are built per transaction by
// the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Notification outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notify.JobWriter)),
		),
		fx.Annotate(
			notify.NewOutboxNotifier,
			fx.As(new(shared.WinnerNotifier)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
