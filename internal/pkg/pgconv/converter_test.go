//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cellar-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericConversion(t *testing.T) {
	cases := []string{"100", "19.99", "0.25", "1234567.891"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)
			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: false})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
}

func TestTimeConversion(t *testing.T) {
	t.Run("zero time is stored as NULL", func(t *testing.T) {
		ts := pgconv.TimeToPgtype(time.Time{})
		assert.False(t, ts.Valid)
		assert.True(t, pgconv.TimeFromPgtype(ts).IsZero())
	})

	t.Run("values are normalized to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		in := time.Date(2026, 3, 2, 19, 0, 0, 0, tokyo)
		got := pgconv.TimeFromPgtype(pgconv.TimeToPgtype(in))
		assert.Equal(t, time.UTC, got.Location())
		assert.True(t, in.Equal(got))
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find listing: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("connection reset")))
}
