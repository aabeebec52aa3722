package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	regionentity "winecellar_backend/internal/feature/region/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&regionentity.Region{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedRegion はテスト用の産地データをデータベースに作成します。
func seedRegion(t *testing.T, db *gorm.DB, name, country string) *regionentity.Region {
	t.Helper()

	region := &regionentity.Region{Name: name, Country: country}
	err := db.Create(region).Error
	require.NoError(t, err, "failed to seed region")

	return region
}

func TestNewRegionCatalog(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	catalog := NewRegionCatalog(db)

	assert.NotNil(t, catalog, "catalog should not be nil")
	assert.NotNil(t, catalog.db, "database connection should not be nil")
}

// TestRegionCatalogGorm_ListCandidates はヒント有無での候補順序を検証します。
func TestRegionCatalogGorm_ListCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		countryHint   string
		setupFunc     func(t *testing.T, db *gorm.DB)
		expectedNames []string
	}{
		{
			name:        "hinted country comes first, id ascending within blocks",
			countryHint: "FR",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedRegion(t, db, "Rioja", "ES")
				seedRegion(t, db, "Bordeaux", "FR")
				seedRegion(t, db, "Toscana", "IT")
				seedRegion(t, db, "Bourgogne", "FR")
			},
			expectedNames: []string{"Bordeaux", "Bourgogne", "Rioja", "Toscana"},
		},
		{
			name:        "no hint returns id ascending",
			countryHint: "",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedRegion(t, db, "Rioja", "ES")
				seedRegion(t, db, "Bordeaux", "FR")
				seedRegion(t, db, "Toscana", "IT")
			},
			expectedNames: []string{"Rioja", "Bordeaux", "Toscana"},
		},
		{
			name:        "hint with no matching country keeps id order",
			countryHint: "US",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedRegion(t, db, "Rioja", "ES")
				seedRegion(t, db, "Bordeaux", "FR")
			},
			expectedNames: []string{"Rioja", "Bordeaux"},
		},
		{
			name:          "empty catalog returns empty list",
			countryHint:   "FR",
			setupFunc:     func(t *testing.T, db *gorm.DB) {},
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			catalog := NewRegionCatalog(db)

			tt.setupFunc(t, db)

			candidates, err := catalog.ListCandidates(context.Background(), tt.countryHint)

			assert.NoError(t, err)
			assert.Len(t, candidates, len(tt.expectedNames))
			for i, expectedName := range tt.expectedNames {
				assert.Equal(t, expectedName, candidates[i].Name)
			}
		})
	}
}

// TestRegionCatalogGorm_ListCandidates_FieldValues は候補の全フィールドが正しく写像されることを検証します。
func TestRegionCatalogGorm_ListCandidates_FieldValues(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	catalog := NewRegionCatalog(db)

	seeded := seedRegion(t, db, "Bordeaux", "FR")

	candidates, err := catalog.ListCandidates(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, seeded.ID, candidates[0].ID)
	assert.Equal(t, "Bordeaux", candidates[0].Name)
	assert.Equal(t, "FR", candidates[0].Country)
}
