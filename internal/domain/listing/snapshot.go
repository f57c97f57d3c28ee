package listing

import "github.com/shopspring/decimal"

// Snapshot is the copy of a listing's descriptive data held by cart lines,
// purchases and auctions. It carries no quantity.
type Snapshot struct {
	Category string
	Identity Identity
	Country  string
	Region   string
	Variety  string
	Winery   string
	Year     string
	Price    decimal.Decimal
}

func SnapshotOf(category string, w Wine, price decimal.Decimal) Snapshot {
	return Snapshot{
		Category: category,
		Identity: ComputeIdentity(w, price),
		Country:  w.country,
		Region:   w.region,
		Variety:  w.variety,
		Winery:   w.winery,
		Year:     w.year,
		Price:    price,
	}
}

// NewSnapshot validates caller supplied fields and derives the identity.
func NewSnapshot(category, country, region, variety, winery, year string, price decimal.Decimal) (Snapshot, error) {
	c, err := NormalizeCategory(category)
	if err != nil {
		return Snapshot{}, err
	}
	w, err := NewWine(country, region, variety, winery, year)
	if err != nil {
		return Snapshot{}, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return Snapshot{}, err
	}
	return SnapshotOf(c, w, p), nil
}

func (s Snapshot) Wine() Wine {
	return ReconstructWine(s.Country, s.Region, s.Variety, s.Winery, s.Year)
}
