package stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklight/stocklight-backend/pkg/db/models"
	"github.com/stocklight/stocklight-backend/pkg/enums"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
)

func TestAppendRejectsBadEntries(t *testing.T) {
	conn := setupStockTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	err := repo.Append(ctx, &models.StockEntry{ItemID: 1, Kind: enums.StockEntryKindIn, Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	err = repo.Append(ctx, &models.StockEntry{ItemID: 1, Kind: "SIDEWAYS", Quantity: 3})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestRecentOrderingAndLimit(t *testing.T) {
	conn := setupStockTestDB(t)
	item := seedItem(t, conn, "Widget", 0, 2)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, &models.StockEntry{
			ItemID:    item.ID,
			Kind:      enums.StockEntryKindIn,
			Quantity:  i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	// Same timestamp as the last entry; later insert must sort first.
	require.NoError(t, repo.Append(ctx, &models.StockEntry{
		ItemID:    item.ID,
		Kind:      enums.StockEntryKindOut,
		Quantity:  9,
		CreatedAt: base.Add(2 * time.Minute),
	}))

	rows, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 9, rows[0].Quantity)
	assert.Equal(t, 3, rows[1].Quantity)
	assert.Equal(t, 2, rows[2].Quantity)
	require.NotNil(t, rows[0].ItemName)
	assert.Equal(t, "Widget", *rows[0].ItemName)

	empty, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCountByItem(t *testing.T) {
	conn := setupStockTestDB(t)
	item := seedItem(t, conn, "Widget", 0, 2)
	other := seedItem(t, conn, "Gadget", 0, 2)
	repo := NewRepository(conn)
	ctx := context.Background()

	ts := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, &models.StockEntry{ItemID: item.ID, Kind: enums.StockEntryKindIn, Quantity: 1, CreatedAt: ts}))
	require.NoError(t, repo.Append(ctx, &models.StockEntry{ItemID: item.ID, Kind: enums.StockEntryKindOut, Quantity: 1, CreatedAt: ts}))
	require.NoError(t, repo.Append(ctx, &models.StockEntry{ItemID: other.ID, Kind: enums.StockEntryKindIn, Quantity: 1, CreatedAt: ts}))

	count, err := repo.CountByItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
