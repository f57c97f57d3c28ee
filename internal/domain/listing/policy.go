package listing

import "github.com/shopspring/decimal"

type LowStockAction int

const (
	KeepListing LowStockAction = iota
	RemoveListing
	ConvertToAuction
)

func (a LowStockAction) String() string {
	switch a {
	case RemoveListing:
		return "remove"
	case ConvertToAuction:
		return "auction"
	default:
		return "keep"
	}
}

// EvaluateLowStock decides what happens to a listing after a sale.
// The threshold is relative to price, not to the original quantity.
func EvaluateLowStock(remaining int, price, ratio decimal.Decimal) LowStockAction {
	if remaining <= 0 {
		return RemoveListing
	}
	if decimal.NewFromInt(int64(remaining)).LessThanOrEqual(ratio.Mul(price)) {
		return ConvertToAuction
	}
	return KeepListing
}
