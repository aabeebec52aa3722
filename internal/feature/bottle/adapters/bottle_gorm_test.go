package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"winecellar_backend/internal/feature/bottle/domain/entity"
	"winecellar_backend/internal/feature/bottle/usecase"
	storeentity "winecellar_backend/internal/feature/store/domain/entity"
	wineentity "winecellar_backend/internal/feature/wine/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
// 外部キー制約の検証のためforeign_keysプラグマを有効にします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&wineentity.Wine{}, &storeentity.Store{}, &entity.Bottle{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedWine(t *testing.T, db *gorm.DB, name string) *wineentity.Wine {
	t.Helper()

	wine := &wineentity.Wine{Name: name}
	require.NoError(t, db.Create(wine).Error, "failed to seed wine")
	return wine
}

func seedStore(t *testing.T, db *gorm.DB, name string) *storeentity.Store {
	t.Helper()

	store := &storeentity.Store{Name: name}
	require.NoError(t, db.Create(store).Error, "failed to seed store")
	return store
}

func seedBottle(t *testing.T, db *gorm.DB, wineID uint, storeID *uint) *entity.Bottle {
	t.Helper()

	bottle := &entity.Bottle{WineID: wineID, StoreID: storeID, SizeML: 750}
	require.NoError(t, db.Create(bottle).Error, "failed to seed bottle")
	return bottle
}

func boolptr(v bool) *bool { return &v }

func TestBottleGorm_List_Filters(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBottleRepository(db)

	wineA := seedWine(t, db, "Wine A")
	wineB := seedWine(t, db, "Wine B")

	b1 := seedBottle(t, db, wineA.ID, nil)
	seedBottle(t, db, wineA.ID, nil)
	seedBottle(t, db, wineB.ID, nil)

	require.NoError(t, db.Model(b1).Update("consumed", true).Error)

	t.Run("no filter returns all, newest first", func(t *testing.T) {
		bottles, err := repo.List(context.Background(), usecase.Filter{})
		require.NoError(t, err)
		require.Len(t, bottles, 3)
		assert.Greater(t, bottles[0].ID, bottles[2].ID, "should be ordered id DESC")
	})

	t.Run("filter by wine", func(t *testing.T) {
		bottles, err := repo.List(context.Background(), usecase.Filter{WineID: &wineA.ID})
		require.NoError(t, err)
		assert.Len(t, bottles, 2)
	})

	t.Run("filter by consumed", func(t *testing.T) {
		bottles, err := repo.List(context.Background(), usecase.Filter{Consumed: boolptr(true)})
		require.NoError(t, err)
		require.Len(t, bottles, 1)
		assert.Equal(t, b1.ID, bottles[0].ID)
	})

	t.Run("combined filters", func(t *testing.T) {
		bottles, err := repo.List(context.Background(), usecase.Filter{WineID: &wineA.ID, Consumed: boolptr(false)})
		require.NoError(t, err)
		assert.Len(t, bottles, 1)
	})
}

func TestBottleGorm_Get_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBottleRepository(db)

	_, err := repo.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrBottleNotFound)
}

// TestBottleGorm_WineDeleteCascades はワイン削除時にボトルが連鎖削除されることを検証します。
func TestBottleGorm_WineDeleteCascades(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBottleRepository(db)

	wine := seedWine(t, db, "Doomed Wine")
	bottle := seedBottle(t, db, wine.ID, nil)

	require.NoError(t, db.Delete(&wineentity.Wine{}, wine.ID).Error)

	_, err := repo.Get(context.Background(), bottle.ID)
	assert.ErrorIs(t, err, usecase.ErrBottleNotFound, "bottle should be gone after wine deletion")
}

// TestBottleGorm_StoreDeleteNullsReference は店削除時にボトルのstore_idがNULLになることを検証します。
func TestBottleGorm_StoreDeleteNullsReference(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBottleRepository(db)

	wine := seedWine(t, db, "Wine")
	store := seedStore(t, db, "Closing Store")
	bottle := seedBottle(t, db, wine.ID, &store.ID)

	require.NoError(t, db.Delete(&storeentity.Store{}, store.ID).Error)

	got, err := repo.Get(context.Background(), bottle.ID)
	require.NoError(t, err, "bottle must survive store deletion")
	assert.Nil(t, got.StoreID, "store reference should be cleared")
}
