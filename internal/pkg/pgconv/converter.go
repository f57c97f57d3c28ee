// Package pgconv converts between pgtype values and the types the market
// domain works with: money as decimal.Decimal and timestamps in UTC.
package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrInvalidNumericValue = errors.New("numeric column holds no finite value")

// DecimalFromNumeric reads a NUMERIC price or bid. NULL, NaN and infinities
// are rejected; money columns are NOT NULL so any of them means corruption.
func DecimalFromNumeric(n pgtype.Numeric) (decimal.Decimal, error) {
	switch {
	case !n.Valid, n.NaN, n.InfinityModifier != pgtype.Finite, n.Int == nil:
		return decimal.Zero, ErrInvalidNumericValue
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	coef := new(big.Int).Set(d.Coefficient())
	return pgtype.Numeric{Int: coef, Exp: d.Exponent(), Valid: true}
}

func StringPtrFromPgtype(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// TimeFromPgtype returns the zero time for NULL.
func TimeFromPgtype(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time.UTC()
}

// TimeToPgtype maps the zero time to NULL.
func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
