package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Listings struct {
	Category          string             `json:"category"`
	Identity          string             `json:"identity"`
	Country           string             `json:"country"`
	Region            string             `json:"region"`
	Variety           string             `json:"variety"`
	Winery            string             `json:"winery"`
	Year              string             `json:"year"`
	Price             pgtype.Numeric     `json:"price"`
	QuantityAvailable int32              `json:"quantity_available"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
}

type CartLines struct {
	ID        uuid.UUID          `json:"id"`
	ShopperID uuid.UUID          `json:"shopper_id"`
	Email     string             `json:"email"`
	Category  string             `json:"category"`
	Identity  string             `json:"identity"`
	Country   string             `json:"country"`
	Region    string             `json:"region"`
	Variety   string             `json:"variety"`
	Winery    string             `json:"winery"`
	Year      string             `json:"year"`
	Price     pgtype.Numeric     `json:"price"`
	Quantity  int32              `json:"quantity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Purchases struct {
	ID        uuid.UUID          `json:"id"`
	BuyerID   uuid.UUID          `json:"buyer_id"`
	Email     string             `json:"email"`
	Category  string             `json:"category"`
	Identity  string             `json:"identity"`
	Country   string             `json:"country"`
	Region    string             `json:"region"`
	Variety   string             `json:"variety"`
	Winery    string             `json:"winery"`
	Year      string             `json:"year"`
	ListPrice pgtype.Numeric     `json:"list_price"`
	UnitPrice pgtype.Numeric     `json:"unit_price"`
	Quantity  int32              `json:"quantity"`
	Source    string             `json:"source"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Auctions struct {
	ID                uuid.UUID          `json:"id"`
	Category          string             `json:"category"`
	Identity          string             `json:"identity"`
	Country           string             `json:"country"`
	Region            string             `json:"region"`
	Variety           string             `json:"variety"`
	Winery            string             `json:"winery"`
	Year              string             `json:"year"`
	ListPrice         pgtype.Numeric     `json:"list_price"`
	QuantityAvailable int32              `json:"quantity_available"`
	HighestBid        pgtype.Numeric     `json:"highest_bid"`
	StartedAt         pgtype.Timestamptz `json:"started_at"`
	EndsAt            pgtype.Timestamptz `json:"ends_at"`
}

type BidPlacements struct {
	ID        uuid.UUID          `json:"id"`
	AuctionID uuid.UUID          `json:"auction_id"`
	BidderID  uuid.UUID          `json:"bidder_id"`
	Email     string             `json:"email"`
	Price     pgtype.Numeric     `json:"price"`
	Quantity  int32              `json:"quantity"`
	Status    string             `json:"status"`
	PlacedAt  pgtype.Timestamptz `json:"placed_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
