package listing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"cellar-market/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Unit separator between fields keeps ("ab", "c") and ("a", "bc") distinct.
const identitySeparator = "\x1f"

// Identity is the derived key of a listing. It changes when any descriptive
// field or the price changes.
type Identity string

func (i Identity) String() string { return string(i) }

// Wine describes what is being sold, independent of price and stock.
type Wine struct {
	country string
	region  string
	variety string
	winery  string
	year    string
}

func NewWine(country, region, variety, winery, year string) (Wine, error) {
	w := Wine{
		country: strings.TrimSpace(country),
		region:  strings.TrimSpace(region),
		variety: strings.TrimSpace(variety),
		winery:  strings.TrimSpace(winery),
		year:    strings.TrimSpace(year),
	}
	for _, f := range []string{w.country, w.region, w.variety, w.winery, w.year} {
		if f == "" {
			return Wine{}, errs.ErrMissingField
		}
	}
	return w, nil
}

func (w Wine) Country() string { return w.country }
func (w Wine) Region() string  { return w.region }
func (w Wine) Variety() string { return w.variety }
func (w Wine) Winery() string  { return w.winery }
func (w Wine) Year() string    { return w.year }

func NewPrice(d decimal.Decimal) (decimal.Decimal, error) {
	if !d.IsPositive() {
		return decimal.Zero, errs.ErrInvalidPrice
	}
	return d, nil
}

// ComputeIdentity hashes the descriptive fields and the canonical price.
// decimal.String drops trailing zeros, so 12.5 and 12.50 map to the same key.
func ComputeIdentity(w Wine, price decimal.Decimal) Identity {
	h := sha256.New()
	for _, part := range []string{w.country, w.region, w.variety, w.winery, w.year, price.String()} {
		h.Write([]byte(part))
		h.Write([]byte(identitySeparator))
	}
	return Identity(hex.EncodeToString(h.Sum(nil)))
}

func NormalizeCategory(category string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return "", errs.ErrMissingField
	}
	return c, nil
}

func ReconstructWine(country, region, variety, winery, year string) Wine {
	return Wine{country: country, region: region, variety: variety, winery: winery, year: year}
}
