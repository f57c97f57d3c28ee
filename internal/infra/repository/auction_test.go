//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/infra"
	"cellar-market/internal/infra/repository"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/errs"
	"cellar-market/tests/common/builder"
	repositorymock "cellar-market/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuctionRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	snap := builder.NewListingBuilder().BuildSnapshot()
	a, err := auction.Open(snap, 2, snap.Price, now.Add(4*time.Hour), now)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		result     error
		wantErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: auction inserted"},
		{name: "error: auction already open", result: pgx.ErrNoRows, wantErr: errs.ErrAuctionAlreadyOpen, expectKind: infra.KindDuplicateKey},
		{name: "error: database error", result: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockAuctionWriteQueries(ctrl)
			repo := repository.NewAuctionRepository(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().CreateAuctionIfAbsent(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAuctionIfAbsentParams) (uuid.UUID, error) {
					assert.Equal(t, a.ID(), arg.ID)
					assert.Equal(t, int32(2), arg.QuantityAvailable)
					if tc.result != nil {
						return uuid.Nil, tc.result
					}
					return arg.ID, nil
				})

			err := repo.CreateIfAbsent(ctx, &mockDBTX{}, a)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr))
			}
		})
	}
}

func TestAuctionRepository_FindForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockAuctionWriteQueries(ctrl)
	repo := repository.NewAuctionRepository(mockQueries, &mockDBTX{})
	id := uuid.New()

	mockQueries.EXPECT().GetAuctionForUpdate(ctx, gomock.Any(), id).Return(sqlc.Auctions{}, pgx.ErrNoRows)

	_, err := repo.FindForUpdate(ctx, &mockDBTX{}, id)
	assert.True(t, errs.Is(err, errs.ErrAuctionNotFound))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
