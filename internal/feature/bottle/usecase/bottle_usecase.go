// Package usecase はbottleフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"winecellar_backend/internal/feature/bottle/domain/entity"
)

var (
	// ErrBottleNotFound is returned when no bottle exists with the given id.
	ErrBottleNotFound = errors.New("bottle not found")

	// ErrInvalidBottle is returned when a bottle fails validation.
	ErrInvalidBottle = errors.New("invalid bottle")
)

// Filter は一覧取得の絞り込み条件です。
type Filter struct {
	WineID   *uint
	Consumed *bool
}

// BottleRepository abstracts the persistence layer for bottles.
type BottleRepository interface {
	List(ctx context.Context, filter Filter) ([]entity.Bottle, error)
	Get(ctx context.Context, id uint) (*entity.Bottle, error)
	Create(ctx context.Context, bottle *entity.Bottle) error
	Update(ctx context.Context, bottle *entity.Bottle) error
	Delete(ctx context.Context, id uint) error
}

// BottleUsecase provides CRUD operations for bottles.
type BottleUsecase struct {
	repo BottleRepository
}

// NewBottleUsecase はBottleUsecaseの新しいインスタンスを生成します。
func NewBottleUsecase(r BottleRepository) *BottleUsecase {
	return &BottleUsecase{repo: r}
}

func (u *BottleUsecase) List(ctx context.Context, filter Filter) ([]entity.Bottle, error) {
	return u.repo.List(ctx, filter)
}

func (u *BottleUsecase) Get(ctx context.Context, id uint) (*entity.Bottle, error) {
	return u.repo.Get(ctx, id)
}

func (u *BottleUsecase) Create(ctx context.Context, bottle *entity.Bottle) error {
	if err := validate(bottle); err != nil {
		return err
	}
	if bottle.SizeML == 0 {
		bottle.SizeML = 750
	}
	return u.repo.Create(ctx, bottle)
}

func (u *BottleUsecase) Update(ctx context.Context, bottle *entity.Bottle) error {
	if err := validate(bottle); err != nil {
		return err
	}
	if _, err := u.repo.Get(ctx, bottle.ID); err != nil {
		return err
	}
	return u.repo.Update(ctx, bottle)
}

func (u *BottleUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// Consume はボトルを消費済みにします。日付未指定の場合は当日を記録します。
func (u *BottleUsecase) Consume(ctx context.Context, id uint, consumedDate *time.Time) (*entity.Bottle, error) {
	bottle, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if bottle.Consumed {
		return nil, fmt.Errorf("%w: bottle already consumed", ErrInvalidBottle)
	}
	bottle.Consumed = true
	if consumedDate != nil {
		bottle.ConsumedDate = consumedDate
	} else {
		now := time.Now()
		bottle.ConsumedDate = &now
	}
	if err := u.repo.Update(ctx, bottle); err != nil {
		return nil, err
	}
	return bottle, nil
}

func validate(bottle *entity.Bottle) error {
	if bottle.WineID == 0 {
		return fmt.Errorf("%w: wine is required", ErrInvalidBottle)
	}
	if bottle.SizeML < 0 {
		return fmt.Errorf("%w: size_ml must be positive", ErrInvalidBottle)
	}
	if bottle.Price != nil && *bottle.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidBottle)
	}
	return nil
}
