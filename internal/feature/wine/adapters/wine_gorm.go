// Package adapters はwineフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"winecellar_backend/internal/feature/wine/domain/entity"
	"winecellar_backend/internal/feature/wine/usecase"
)

// bottleCountSelect は未消費ボトル数をサブクエリで集計するSELECT句です。
const bottleCountSelect = "wines.*, " +
	"(SELECT COUNT(*) FROM bottles WHERE bottles.wine_id = wines.id AND bottles.consumed = ?) AS bottle_count"

// wineGorm はWineRepositoryインターフェースのGORM実装です。
type wineGorm struct {
	db *gorm.DB
}

var _ usecase.WineRepository = (*wineGorm)(nil)

// NewWineRepository は指定されたDB接続でリポジトリの新しいインスタンスを生成します。
func NewWineRepository(db *gorm.DB) *wineGorm {
	return &wineGorm{db: db}
}

// List は条件に一致するワインをボトル数付きで返します。
func (r *wineGorm) List(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
	q := r.db.WithContext(ctx).Model(&entity.Wine{}).Select(bottleCountSelect, false)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(region) LIKE ? OR LOWER(grape_varieties) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.WineType != "" {
		q = q.Where("wine_type = ?", filter.WineType)
	}
	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}

	// Orderingはusecase側でホワイトリスト検証済み。
	column := strings.TrimPrefix(filter.Ordering, "-")
	direction := "ASC"
	if strings.HasPrefix(filter.Ordering, "-") {
		direction = "DESC"
	}
	q = q.Order(column + " " + direction)

	var wines []entity.Wine
	if err := q.Find(&wines).Error; err != nil {
		return nil, err
	}
	return wines, nil
}

// Get はidでワインを1件、ボトル数付きで返します。
func (r *wineGorm) Get(ctx context.Context, id uint) (*entity.Wine, error) {
	var wine entity.Wine
	err := r.db.WithContext(ctx).Model(&entity.Wine{}).
		Select(bottleCountSelect, false).
		First(&wine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrWineNotFound
		}
		return nil, err
	}
	return &wine, nil
}

// Create はワインを登録します。
func (r *wineGorm) Create(ctx context.Context, wine *entity.Wine) error {
	return r.db.WithContext(ctx).Create(wine).Error
}

// Update はワインを全フィールド更新します。
func (r *wineGorm) Update(ctx context.Context, wine *entity.Wine) error {
	return r.db.WithContext(ctx).Save(wine).Error
}

// Delete はidでワインを削除します。ボトルへの連鎖削除は外部キー制約に任せます。
func (r *wineGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Wine{}, id).Error
}
