// Package usecase はstoreフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"winecellar_backend/internal/feature/store/domain/entity"
)

var (
	// ErrStoreNotFound is returned when no store exists with the given id.
	ErrStoreNotFound = errors.New("store not found")

	// ErrInvalidStore is returned when a store fails validation.
	ErrInvalidStore = errors.New("invalid store")
)

// StoreRepository abstracts the persistence layer for stores.
type StoreRepository interface {
	List(ctx context.Context) ([]entity.Store, error)
	Get(ctx context.Context, id uint) (*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uint) error
}

// StoreUsecase provides CRUD operations for stores.
type StoreUsecase struct {
	repo StoreRepository
}

// NewStoreUsecase はStoreUsecaseの新しいインスタンスを生成します。
func NewStoreUsecase(r StoreRepository) *StoreUsecase {
	return &StoreUsecase{repo: r}
}

func (u *StoreUsecase) List(ctx context.Context) ([]entity.Store, error) {
	return u.repo.List(ctx)
}

func (u *StoreUsecase) Get(ctx context.Context, id uint) (*entity.Store, error) {
	return u.repo.Get(ctx, id)
}

func (u *StoreUsecase) Create(ctx context.Context, store *entity.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidStore)
	}
	return u.repo.Create(ctx, store)
}

func (u *StoreUsecase) Update(ctx context.Context, store *entity.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidStore)
	}
	if _, err := u.repo.Get(ctx, store.ID); err != nil {
		return err
	}
	return u.repo.Update(ctx, store)
}

// Delete は店を削除します。参照しているボトルのstore_idはDBの外部キー制約で
// NULLに落ちます（ボトル自体は残ります）。
func (u *StoreUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
