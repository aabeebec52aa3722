// Package adapters はlabelanalysisフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"winecellar_backend/internal/feature/labelanalysis/domain/entity"
	"winecellar_backend/internal/feature/labelanalysis/usecase"
	regionentity "winecellar_backend/internal/feature/region/domain/entity"
)

// regionCatalogGorm はRegionCatalogインターフェースのGORM実装です。
// regionフィーチャーが管理するカタログを読み取り専用で参照します。
type regionCatalogGorm struct {
	db *gorm.DB
}

var _ usecase.RegionCatalog = (*regionCatalogGorm)(nil)

// NewRegionCatalog は指定されたDB接続でカタログの新しいインスタンスを生成します。
func NewRegionCatalog(db *gorm.DB) *regionCatalogGorm {
	return &regionCatalogGorm{db: db}
}

// ListCandidates は照合候補を返します。countryHintが空でない場合はその国の
// 候補を先に並べます。同点スコアの決着が候補順に依存するため、ブロック内は
// id昇順で決定的に並べます。
func (r *regionCatalogGorm) ListCandidates(ctx context.Context, countryHint string) ([]entity.RegionCandidate, error) {
	q := r.db.WithContext(ctx).Model(&regionentity.Region{})
	if countryHint != "" {
		// countryHintはモデル出力由来なのでプレースホルダで渡す。
		q = q.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN country = ? THEN 0 ELSE 1 END, id ASC",
			Vars:               []interface{}{countryHint},
			WithoutParentheses: true,
		}})
	} else {
		q = q.Order("id ASC")
	}

	var regions []regionentity.Region
	if err := q.Find(&regions).Error; err != nil {
		return nil, err
	}

	candidates := make([]entity.RegionCandidate, 0, len(regions))
	for _, region := range regions {
		candidates = append(candidates, entity.RegionCandidate{
			ID:      region.ID,
			Name:    region.Name,
			Country: region.Country,
		})
	}
	return candidates, nil
}
