// Package usecase はregionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"winecellar_backend/internal/feature/region/domain/entity"
)

var (
	// ErrRegionNotFound is returned when no region exists with the given id.
	ErrRegionNotFound = errors.New("region not found")

	// ErrInvalidRegion is returned when a region fails validation.
	ErrInvalidRegion = errors.New("invalid region")
)

// RegionRepository abstracts the persistence layer for the region catalog.
// Following Go convention: interfaces are defined by the consumer (usecase).
type RegionRepository interface {
	List(ctx context.Context, country string) ([]entity.Region, error)
	Get(ctx context.Context, id uint) (*entity.Region, error)
	Create(ctx context.Context, region *entity.Region) error
	Update(ctx context.Context, region *entity.Region) error
	Delete(ctx context.Context, id uint) error
}

// CatalogInvalidator drops cached candidate lists derived from the catalog.
// The label-analysis read path caches candidates, so every catalog write has
// to flush that cache or deleted regions keep matching until the TTL expires.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// RegionUsecase provides catalog operations for wine regions.
type RegionUsecase struct {
	repo        RegionRepository
	invalidator CatalogInvalidator
}

// NewRegionUsecase はRegionUsecaseの新しいインスタンスを生成します。
// invalidatorはnil可です（キャッシュなしで動かす場合）。
func NewRegionUsecase(r RegionRepository, invalidator CatalogInvalidator) *RegionUsecase {
	return &RegionUsecase{repo: r, invalidator: invalidator}
}

// List は産地を名前順で返します。countryが空でなければその国のみに絞ります。
func (u *RegionUsecase) List(ctx context.Context, country string) ([]entity.Region, error) {
	return u.repo.List(ctx, strings.ToUpper(strings.TrimSpace(country)))
}

// Get はidで産地を1件返します。
func (u *RegionUsecase) Get(ctx context.Context, id uint) (*entity.Region, error) {
	return u.repo.Get(ctx, id)
}

// Create は検証のうえ産地を登録します。
func (u *RegionUsecase) Create(ctx context.Context, region *entity.Region) error {
	if err := validate(region); err != nil {
		return err
	}
	if err := u.repo.Create(ctx, region); err != nil {
		return err
	}
	u.invalidateCatalog(ctx)
	return nil
}

// Update は既存の産地を検証のうえ置き換えます。
func (u *RegionUsecase) Update(ctx context.Context, region *entity.Region) error {
	if err := validate(region); err != nil {
		return err
	}
	if _, err := u.repo.Get(ctx, region.ID); err != nil {
		return err
	}
	if err := u.repo.Update(ctx, region); err != nil {
		return err
	}
	u.invalidateCatalog(ctx)
	return nil
}

// Delete はidで産地を削除します。
func (u *RegionUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidateCatalog(ctx)
	return nil
}

// invalidateCatalog はキャッシュ破棄をベストエフォートで行います。
// 破棄に失敗しても書き込み自体は成功として扱います（TTLで回復するため）。
func (u *RegionUsecase) invalidateCatalog(ctx context.Context) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.Invalidate(ctx); err != nil {
		slog.Warn("region catalog cache invalidation failed", "error", err)
	}
}

func validate(region *entity.Region) error {
	if strings.TrimSpace(region.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRegion)
	}
	region.Country = strings.ToUpper(strings.TrimSpace(region.Country))
	if len(region.Country) != 2 {
		return fmt.Errorf("%w: country must be an ISO 3166-1 alpha-2 code", ErrInvalidRegion)
	}
	return nil
}
