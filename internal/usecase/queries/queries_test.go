//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"cellar-market/internal/infra"
	"cellar-market/internal/usecase/queries"
	queriesmock "cellar-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestListingQueries_ListByCategory(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		category     string
		page         queries.Page
		wantCategory string
		wantLimit    int32
		wantOffset   int32
	}{
		{name: "blank category uses the default", category: "  ", page: queries.Page{}, wantCategory: "red", wantLimit: 20},
		{name: "category is normalised", category: " White ", page: queries.Page{Limit: 5, Offset: 10}, wantCategory: "white", wantLimit: 5, wantOffset: 10},
		{name: "limit is capped", category: "red", page: queries.Page{Limit: 1000, Offset: -3}, wantCategory: "red", wantLimit: queries.MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockListingReadStore(ctrl)
			store.EXPECT().ListByCategory(ctx, tc.wantCategory, tc.wantLimit, tc.wantOffset).Return([]*queries.ListingView{}, nil)

			_, err := queries.NewListingQueries(store, "red").ListByCategory(ctx, tc.category, tc.page)
			require.NoError(t, err)
		})
	}
}

func TestListingQueries_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing listing maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		store.EXPECT().FindByKey(ctx, "red", "abc").
			Return(nil, infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewListingQueries(store, "red").Get(ctx, "", "abc")
		assert.ErrorIs(t, err, queries.ErrListingNotFound)
	})

	t.Run("other failures pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockListingReadStore(ctrl)
		boom := errors.New("boom")
		store.EXPECT().FindByKey(ctx, "red", "abc").Return(nil, boom)

		_, err := queries.NewListingQueries(store, "red").Get(ctx, "red", "abc")
		assert.ErrorIs(t, err, boom)
	})
}

func TestAuctionQueries_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAuctionReadStore(ctrl)
	id := uuid.New()
	store.EXPECT().FindByID(ctx, id).
		Return(nil, infra.WrapRepoErr("auction not found", errors.New("no rows"), infra.KindNotFound))

	_, err := queries.NewAuctionQueries(store, "red").Get(ctx, id)
	assert.ErrorIs(t, err, queries.ErrAuctionNotFound)
}

func TestCartQueries_View(t *testing.T) {
	ctx := context.Background()
	shopperID := uuid.New()

	t.Run("total sums line subtotals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCartReadStore(ctrl)
		store.EXPECT().ListByShopper(ctx, shopperID).Return([]*queries.CartLineView{
			{Subtotal: decimal.RequireFromString("49.00")},
			{Subtotal: decimal.RequireFromString("12.50")},
		}, nil)

		view, err := queries.NewCartQueries(store).View(ctx, shopperID)
		require.NoError(t, err)
		assert.Len(t, view.Lines, 2)
		assert.True(t, view.TotalCost.Equal(decimal.RequireFromString("61.50")), "got %s", view.TotalCost)
	})

	t.Run("empty cart has no lines and zero total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCartReadStore(ctrl)
		store.EXPECT().ListByShopper(ctx, shopperID).Return(nil, nil)

		view, err := queries.NewCartQueries(store).View(ctx, shopperID)
		require.NoError(t, err)
		assert.NotNil(t, view.Lines)
		assert.Empty(t, view.Lines)
		assert.True(t, view.TotalCost.IsZero())
	})
}

func purchaseViews(n int, start time.Time) []*queries.PurchaseView {
	out := make([]*queries.PurchaseView, n)
	for i := range out {
		out[i] = &queries.PurchaseView{ID: uuid.New(), CreatedAt: start.Add(-time.Duration(i) * time.Minute)}
	}
	return out
}

func TestPurchaseQueries_ListByBuyer(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("first page fetches one extra row to detect more", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		rows := purchaseViews(3, start)
		store.EXPECT().FindByBuyerFirstPage(ctx, buyerID, int32(3)).Return(rows, nil)

		got, next, err := queries.NewPurchaseQueries(store).ListByBuyer(ctx, buyerID, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		key, err := queries.ParsePurchaseKey(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, key.ID)
		assert.True(t, rows[1].CreatedAt.Equal(key.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		last := purchaseViews(1, start)[0]
		store.EXPECT().FindByBuyerKeyset(ctx, buyerID, gomock.Any(), last.ID, int32(3)).Return(purchaseViews(1, start), nil)

		cursor := &queries.Cursor{After: queries.PurchaseKey{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()}
		got, next, err := queries.NewPurchaseQueries(store).ListByBuyer(ctx, buyerID, cursor, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor is rejected before querying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)

		_, _, err := queries.NewPurchaseQueries(store).ListByBuyer(ctx, buyerID, &queries.Cursor{After: "bogus"}, 2)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestPurchaseKey_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		micros := rapid.Int64Range(0, 4102444800000000).Draw(t, "micros")
		key := queries.PurchaseKey{CreatedAt: time.UnixMicro(micros), ID: uuid.New()}

		got, err := queries.ParsePurchaseKey(key.Encode())
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if !got.CreatedAt.Equal(key.CreatedAt) || got.ID != key.ID {
			t.Fatalf("round trip mismatch: %+v vs %+v", got, key)
		}
	})
}

func TestParsePurchaseKey_Rejects(t *testing.T) {
	for name, token := range map[string]string{
		"not base64":   "%%%",
		"wrong prefix": base64.RawURLEncoding.EncodeToString([]byte("v1:123-abc")),
		"bad id":       base64.RawURLEncoding.EncodeToString([]byte("pk1.abc.not-a-uuid")),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := queries.ParsePurchaseKey(token)
			assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		})
	}
}

func TestNotificationQueries_BlankEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockNotificationReadStore(ctrl)

	got, err := queries.NewNotificationQueries(store).ListForRecipient(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
