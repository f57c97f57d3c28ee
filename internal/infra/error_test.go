//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"cellar-market/internal/infra"
	"cellar-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to a db failure marked for the handlers", func(t *testing.T) {
		err := infra.WrapRepoErr("lock listing", errors.New("connection reset"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.Contains(t, err.Error(), "lock listing")
	})

	t.Run("not found keeps the driver cause", func(t *testing.T) {
		err := infra.WrapRepoErr("listing not found", pgx.ErrNoRows, infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, pgx.ErrNoRows))
		assert.False(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("nil cause", func(t *testing.T) {
		err := infra.WrapRepoErr("auction already open", nil, infra.KindConflict)

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Equal(t, "CONFLICT: auction already open", err.Error())
	})
}
