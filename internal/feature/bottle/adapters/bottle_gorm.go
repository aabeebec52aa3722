// Package adapters はbottleフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"winecellar_backend/internal/feature/bottle/domain/entity"
	"winecellar_backend/internal/feature/bottle/usecase"
)

type bottleGorm struct {
	db *gorm.DB
}

var _ usecase.BottleRepository = (*bottleGorm)(nil)

// NewBottleRepository は指定されたDB接続でリポジトリの新しいインスタンスを生成します。
func NewBottleRepository(db *gorm.DB) *bottleGorm {
	return &bottleGorm{db: db}
}

func (r *bottleGorm) List(ctx context.Context, filter usecase.Filter) ([]entity.Bottle, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if filter.WineID != nil {
		q = q.Where("wine_id = ?", *filter.WineID)
	}
	if filter.Consumed != nil {
		q = q.Where("consumed = ?", *filter.Consumed)
	}
	var bottles []entity.Bottle
	if err := q.Find(&bottles).Error; err != nil {
		return nil, err
	}
	return bottles, nil
}

func (r *bottleGorm) Get(ctx context.Context, id uint) (*entity.Bottle, error) {
	var bottle entity.Bottle
	if err := r.db.WithContext(ctx).First(&bottle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBottleNotFound
		}
		return nil, err
	}
	return &bottle, nil
}

func (r *bottleGorm) Create(ctx context.Context, bottle *entity.Bottle) error {
	return r.db.WithContext(ctx).Create(bottle).Error
}

// Update はボトルを全フィールド更新します。Save対象に関連は含めません。
func (r *bottleGorm) Update(ctx context.Context, bottle *entity.Bottle) error {
	return r.db.WithContext(ctx).Omit("Wine", "Store").Save(bottle).Error
}

func (r *bottleGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Bottle{}, id).Error
}
