// Package usecase はwineフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	labelentity "winecellar_backend/internal/feature/labelanalysis/domain/entity"
	"winecellar_backend/internal/feature/wine/domain/entity"
)

var (
	// ErrWineNotFound is returned when no wine exists with the given id.
	ErrWineNotFound = errors.New("wine not found")

	// ErrInvalidWine is returned when a wine fails validation.
	ErrInvalidWine = errors.New("invalid wine")
)

// orderings は一覧の並び替えに使えるカラムのホワイトリストです。
var orderings = map[string]bool{
	"id":      true,
	"name":    true,
	"vintage": true,
	"rating":  true,
}

// Filter は一覧取得の絞り込み・並び替え条件です。
type Filter struct {
	Search   string // name / region / grape_varieties の部分一致（大文字小文字無視）
	WineType string
	Country  string
	Ordering string // カラム名。先頭に"-"で降順。未指定は "-id"。
}

// WineRepository abstracts the persistence layer for wine records.
// Following Go convention: interfaces are defined by the consumer (usecase).
type WineRepository interface {
	List(ctx context.Context, filter Filter) ([]entity.Wine, error)
	Get(ctx context.Context, id uint) (*entity.Wine, error)
	Create(ctx context.Context, wine *entity.Wine) error
	Update(ctx context.Context, wine *entity.Wine) error
	Delete(ctx context.Context, id uint) error
}

// WineUsecase provides CRUD operations and validation for wine records.
type WineUsecase struct {
	repo WineRepository
}

// NewWineUsecase はWineUsecaseの新しいインスタンスを生成します。
func NewWineUsecase(r WineRepository) *WineUsecase {
	return &WineUsecase{repo: r}
}

// List は条件に一致するワインを返します。並び替え指定が不正な場合はエラーです。
func (u *WineUsecase) List(ctx context.Context, filter Filter) ([]entity.Wine, error) {
	if filter.Ordering == "" {
		filter.Ordering = "-id"
	}
	column := strings.TrimPrefix(filter.Ordering, "-")
	if !orderings[column] {
		return nil, fmt.Errorf("%w: unknown ordering %q", ErrInvalidWine, filter.Ordering)
	}
	return u.repo.List(ctx, filter)
}

// Get はidでワインを1件返します。
func (u *WineUsecase) Get(ctx context.Context, id uint) (*entity.Wine, error) {
	return u.repo.Get(ctx, id)
}

// Create は検証のうえワインを登録します。
func (u *WineUsecase) Create(ctx context.Context, wine *entity.Wine) error {
	if err := validate(wine); err != nil {
		return err
	}
	return u.repo.Create(ctx, wine)
}

// Update は既存のワインを検証のうえ置き換えます。
func (u *WineUsecase) Update(ctx context.Context, wine *entity.Wine) error {
	if err := validate(wine); err != nil {
		return err
	}
	if _, err := u.repo.Get(ctx, wine.ID); err != nil {
		return err
	}
	return u.repo.Update(ctx, wine)
}

// Delete はidでワインを削除します。関連するボトルはDBの外部キー制約で
// 連鎖削除されます。
func (u *WineUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validate(wine *entity.Wine) error {
	if strings.TrimSpace(wine.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWine)
	}
	if wine.Rating != nil && !isValidRating(*wine.Rating) {
		return fmt.Errorf("%w: rating must be between 0.0 and 5.0 with at most one decimal place", ErrInvalidWine)
	}
	if wine.WineType != nil && !isValidWineType(*wine.WineType) {
		return fmt.Errorf("%w: wine_type must be one of %s", ErrInvalidWine,
			strings.Join(labelentity.WineTypes, ", "))
	}
	return nil
}

// isValidRating は0.0〜5.0かつ小数第1位までの値のみを許容します。
// 4.3のような値は二進浮動小数で厳密に表現できないため、10倍値と
// その丸めの差を許容誤差つきで比較します。
func isValidRating(r float64) bool {
	if r < 0 || r > 5 {
		return false
	}
	scaled := r * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

func isValidWineType(v string) bool {
	for _, t := range labelentity.WineTypes {
		if v == t {
			return true
		}
	}
	return false
}
