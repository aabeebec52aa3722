// Package adapters はstoreフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"winecellar_backend/internal/feature/store/domain/entity"
	"winecellar_backend/internal/feature/store/usecase"
)

type storeGorm struct {
	db *gorm.DB
}

var _ usecase.StoreRepository = (*storeGorm)(nil)

// NewStoreRepository は指定されたDB接続でリポジトリの新しいインスタンスを生成します。
func NewStoreRepository(db *gorm.DB) *storeGorm {
	return &storeGorm{db: db}
}

func (r *storeGorm) List(ctx context.Context) ([]entity.Store, error) {
	var stores []entity.Store
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeGorm) Get(ctx context.Context, id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeGorm) Create(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeGorm) Update(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Store{}, id).Error
}
