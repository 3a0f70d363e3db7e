package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernhall/snackcupboard/internal/database"
	"github.com/wyvernhall/snackcupboard/internal/item"
	"github.com/wyvernhall/snackcupboard/internal/item/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedItems(t *testing.T, s *store.Store, items ...*item.Item) {
	t.Helper()

	for _, it := range items {
		require.NoError(t, s.CreateItem(context.Background(), it))
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	id := uuid.New()
	seedItems(t, s, &item.Item{ID: id, Name: "Coke", PricePence: 100, Category: item.CategoryDrink})

	got, err := s.GetItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Coke", got.Name)
	assert.Equal(t, int64(100), got.PricePence)
	assert.Equal(t, item.CategoryDrink, got.Category)
	assert.Nil(t, got.ArchivedAt)

	_, err = s.GetItem(ctx, uuid.New())
	assert.ErrorIs(t, err, item.ErrNotFound)

	err = s.CreateItem(ctx, &item.Item{ID: uuid.New(), Name: "Coke", PricePence: 120, Category: item.CategoryDrink})
	assert.ErrorIs(t, err, item.ErrDuplicate)
}

func TestStore_ListItems(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	archivedAt := time.Now().UTC()
	seedItems(t, s,
		&item.Item{ID: uuid.New(), Name: "Crisps", PricePence: 80, Category: item.CategoryFood},
		&item.Item{ID: uuid.New(), Name: "apple", PricePence: 40, Category: item.CategoryFood},
		&item.Item{ID: uuid.New(), Name: "Old Bar", PricePence: 60, Category: item.CategoryFood, ArchivedAt: &archivedAt},
	)

	items, err := s.ListItems(ctx, item.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "apple", items[0].Name)
	assert.Equal(t, "Crisps", items[1].Name)

	items, err = s.ListItems(ctx, item.ListFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = s.ListItems(ctx, item.ListFilter{Search: "crisp"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Crisps", items[0].Name)
}

func TestStore_FindByName(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	seedItems(t, s, &item.Item{ID: uuid.New(), Name: "Flapjack", PricePence: 90, Category: item.CategoryFood})

	got, err := s.FindByName(ctx, "FLAPJACK")
	require.NoError(t, err)
	assert.Equal(t, "Flapjack", got.Name)

	_, err = s.FindByName(ctx, "Nothing")
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestStore_UpdateItem(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	id := uuid.New()
	seedItems(t, s,
		&item.Item{ID: id, Name: "Coke", PricePence: 100, Category: item.CategoryDrink},
		&item.Item{ID: uuid.New(), Name: "Fanta", PricePence: 100, Category: item.CategoryDrink},
	)

	err := s.UpdateItem(ctx, &item.Item{ID: id, Name: "Coke Zero", PricePence: 110, Category: item.CategoryDrink})
	require.NoError(t, err)

	got, err := s.GetItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Coke Zero", got.Name)
	assert.Equal(t, int64(110), got.PricePence)

	err = s.UpdateItem(ctx, &item.Item{ID: id, Name: "Fanta", PricePence: 110, Category: item.CategoryDrink})
	assert.ErrorIs(t, err, item.ErrDuplicate)

	err = s.UpdateItem(ctx, &item.Item{ID: uuid.New(), Name: "Ghost", PricePence: 10, Category: item.CategoryFood})
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestStore_ArchiveAndRestoreMany(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	seedItems(t, s,
		&item.Item{ID: a, Name: "Coke", PricePence: 100, Category: item.CategoryDrink},
		&item.Item{ID: b, Name: "Crisps", PricePence: 80, Category: item.CategoryFood},
	)

	require.NoError(t, s.ArchiveMany(ctx, []uuid.UUID{a, b}, time.Now().UTC()))

	items, err := s.ListItems(ctx, item.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, s.RestoreMany(ctx, []uuid.UUID{a}))

	items, err = s.ListItems(ctx, item.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a, items[0].ID)
}

func TestStore_DeleteArchivedMany(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	archivedAt := time.Now().UTC()
	a, b := uuid.New(), uuid.New()
	seedItems(t, s,
		&item.Item{ID: a, Name: "Coke", PricePence: 100, Category: item.CategoryDrink, ArchivedAt: &archivedAt},
		&item.Item{ID: b, Name: "Crisps", PricePence: 80, Category: item.CategoryFood},
	)

	err := s.DeleteArchivedMany(ctx, []uuid.UUID{a, b})
	assert.ErrorIs(t, err, item.ErrNotArchived)

	err = s.DeleteArchivedMany(ctx, []uuid.UUID{a, uuid.New()})
	assert.ErrorIs(t, err, item.ErrNotFound)

	// Failed batches must leave everything in place.
	items, err := s.ListItems(ctx, item.ListFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, s.DeleteArchivedMany(ctx, []uuid.UUID{a}))

	_, err = s.GetItem(ctx, a)
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestStore_ReplaceAll(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	seedItems(t, s, &item.Item{ID: uuid.New(), Name: "Old Stock", PricePence: 50, Category: item.CategoryFood})

	err := s.ReplaceAll(ctx, []*item.Item{
		{ID: uuid.New(), Name: "Coke", PricePence: 100, Category: item.CategoryDrink},
		{ID: uuid.New(), Name: "Crisps", PricePence: 80, Category: item.CategoryFood},
	})
	require.NoError(t, err)

	items, err := s.ListItems(ctx, item.ListFilter{IncludeArchived: true})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Coke", items[0].Name)
	assert.Equal(t, "Crisps", items[1].Name)
}
