package converter

import (
	"fmt"
	"math"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/domain/cart"
	"cellar-market/internal/domain/listing"
	"cellar-market/internal/domain/purchase"
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func Int32(n int) (int32, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("quantity out of int32 range: %d", n)
	}
	return int32(n), nil
}

type wineColumns struct {
	Category, Identity, Country, Region, Variety, Winery, Year string
	Price                                                      pgtype.Numeric
}

func snapshotFrom(c wineColumns) (listing.Snapshot, error) {
	price, err := pgconv.DecimalFromNumeric(c.Price)
	if err != nil {
		return listing.Snapshot{}, err
	}
	return listing.Snapshot{
		Category: c.Category,
		Identity: listing.Identity(c.Identity),
		Country:  c.Country,
		Region:   c.Region,
		Variety:  c.Variety,
		Winery:   c.Winery,
		Year:     c.Year,
		Price:    price,
	}, nil
}

func ListingToUpsertParams(l *listing.Listing) (sqlc.UpsertListingParams, error) {
	qty, err := Int32(l.QuantityAvailable())
	if err != nil {
		return sqlc.UpsertListingParams{}, err
	}
	w := l.Wine()
	return sqlc.UpsertListingParams{
		Category:          l.Category(),
		Identity:          l.Identity().String(),
		Country:           w.Country(),
		Region:            w.Region(),
		Variety:           w.Variety(),
		Winery:            w.Winery(),
		Year:              w.Year(),
		Price:             pgconv.DecimalToNumeric(l.Price()),
		QuantityAvailable: qty,
		CreatedAt:         pgconv.TimeToPgtype(l.CreatedAt()),
	}, nil
}

func ListingFromRow(row sqlc.Listings) (*listing.Listing, error) {
	snap, err := snapshotFrom(wineColumns{row.Category, row.Identity, row.Country, row.Region, row.Variety, row.Winery, row.Year, row.Price})
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(snap.Category, snap.Identity, snap.Wine(), snap.Price, int(row.QuantityAvailable), pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func CartLineToCreateParams(line *cart.Line) (sqlc.CreateCartLineParams, error) {
	qty, err := Int32(line.Quantity())
	if err != nil {
		return sqlc.CreateCartLineParams{}, err
	}
	snap := line.Listing()
	return sqlc.CreateCartLineParams{
		ID:        line.ID(),
		ShopperID: line.Owner().ID(),
		Email:     line.Owner().Email(),
		Category:  snap.Category,
		Identity:  snap.Identity.String(),
		Country:   snap.Country,
		Region:    snap.Region,
		Variety:   snap.Variety,
		Winery:    snap.Winery,
		Year:      snap.Year,
		Price:     pgconv.DecimalToNumeric(snap.Price),
		Quantity:  qty,
		CreatedAt: pgconv.TimeToPgtype(line.CreatedAt()),
	}, nil
}

func CartLineFromRow(row sqlc.CartLines) (*cart.Line, error) {
	owner, err := shopper.New(row.ShopperID, row.Email)
	if err != nil {
		return nil, err
	}
	snap, err := snapshotFrom(wineColumns{row.Category, row.Identity, row.Country, row.Region, row.Variety, row.Winery, row.Year, row.Price})
	if err != nil {
		return nil, err
	}
	return cart.ReconstructLine(row.ID, owner, snap, int(row.Quantity), pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func PurchaseToCreateParams(p *purchase.Purchase) (sqlc.CreatePurchaseParams, error) {
	qty, err := Int32(p.Quantity())
	if err != nil {
		return sqlc.CreatePurchaseParams{}, err
	}
	snap := p.Listing()
	return sqlc.CreatePurchaseParams{
		ID:        p.ID(),
		BuyerID:   p.Buyer().ID(),
		Email:     p.Buyer().Email(),
		Category:  snap.Category,
		Identity:  snap.Identity.String(),
		Country:   snap.Country,
		Region:    snap.Region,
		Variety:   snap.Variety,
		Winery:    snap.Winery,
		Year:      snap.Year,
		ListPrice: pgconv.DecimalToNumeric(snap.Price),
		UnitPrice: pgconv.DecimalToNumeric(p.UnitPrice()),
		Quantity:  qty,
		Source:    p.Source().String(),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}, nil
}

func AuctionToCreateParams(a *auction.Auction) (sqlc.CreateAuctionIfAbsentParams, error) {
	qty, err := Int32(a.QuantityAvailable())
	if err != nil {
		return sqlc.CreateAuctionIfAbsentParams{}, err
	}
	snap := a.Listing()
	return sqlc.CreateAuctionIfAbsentParams{
		ID:                a.ID(),
		Category:          snap.Category,
		Identity:          snap.Identity.String(),
		Country:           snap.Country,
		Region:            snap.Region,
		Variety:           snap.Variety,
		Winery:            snap.Winery,
		Year:              snap.Year,
		ListPrice:         pgconv.DecimalToNumeric(snap.Price),
		QuantityAvailable: qty,
		HighestBid:        pgconv.DecimalToNumeric(a.HighestBid()),
		StartedAt:         pgconv.TimeToPgtype(a.StartedAt()),
		EndsAt:            pgconv.TimeToPgtype(a.EndsAt()),
	}, nil
}

func AuctionFromRow(row sqlc.Auctions) (*auction.Auction, error) {
	snap, err := snapshotFrom(wineColumns{row.Category, row.Identity, row.Country, row.Region, row.Variety, row.Winery, row.Year, row.ListPrice})
	if err != nil {
		return nil, err
	}
	highest, err := pgconv.DecimalFromNumeric(row.HighestBid)
	if err != nil {
		return nil, err
	}
	return auction.ReconstructAuction(row.ID, snap, int(row.QuantityAvailable), highest, pgconv.TimeFromPgtype(row.StartedAt), pgconv.TimeFromPgtype(row.EndsAt)), nil
}

func PlacementToCreateParams(p *auction.Placement) (sqlc.CreateBidPlacementParams, error) {
	qty, err := Int32(p.Quantity())
	if err != nil {
		return sqlc.CreateBidPlacementParams{}, err
	}
	return sqlc.CreateBidPlacementParams{
		ID:        p.ID(),
		AuctionID: p.AuctionID(),
		BidderID:  p.Bidder().ID(),
		Email:     p.Bidder().Email(),
		Price:     pgconv.DecimalToNumeric(p.Price()),
		Quantity:  qty,
		Status:    string(p.Status()),
		PlacedAt:  pgconv.TimeToPgtype(p.PlacedAt()),
	}, nil
}

func PlacementFromRow(row sqlc.BidPlacements) (*auction.Placement, error) {
	bidder, err := shopper.New(row.BidderID, row.Email)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return auction.ReconstructPlacement(row.ID, row.AuctionID, bidder, price, int(row.Quantity), pgconv.TimeFromPgtype(row.PlacedAt), auction.BidStatus(row.Status)), nil
}
