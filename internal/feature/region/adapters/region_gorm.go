// Package adapters はregionフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"winecellar_backend/internal/feature/region/domain/entity"
	"winecellar_backend/internal/feature/region/usecase"
)

// regionGorm はRegionRepositoryインターフェースのGORM実装です。
type regionGorm struct {
	db *gorm.DB
}

var _ usecase.RegionRepository = (*regionGorm)(nil)

// NewRegionRepository は指定されたDB接続でリポジトリの新しいインスタンスを生成します。
func NewRegionRepository(db *gorm.DB) *regionGorm {
	return &regionGorm{db: db}
}

// List は産地を名前順で返します。countryが空でなければその国に絞ります。
func (r *regionGorm) List(ctx context.Context, country string) ([]entity.Region, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if country != "" {
		q = q.Where("country = ?", country)
	}
	var regions []entity.Region
	if err := q.Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

// Get はidで産地を1件返します。存在しない場合はErrRegionNotFoundを返します。
func (r *regionGorm) Get(ctx context.Context, id uint) (*entity.Region, error) {
	var region entity.Region
	if err := r.db.WithContext(ctx).First(&region, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRegionNotFound
		}
		return nil, err
	}
	return &region, nil
}

// Create は産地を登録します。
func (r *regionGorm) Create(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

// Update は産地を全フィールド更新します。
func (r *regionGorm) Update(ctx context.Context, region *entity.Region) error {
	return r.db.WithContext(ctx).Save(region).Error
}

// Delete はidで産地を削除します。
func (r *regionGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Region{}, id).Error
}
