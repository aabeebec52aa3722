// Package entity はbottleフィーチャーのドメインモデルを定義します。
package entity

import (
	"time"

	storeentity "winecellar_backend/internal/feature/store/domain/entity"
	wineentity "winecellar_backend/internal/feature/wine/domain/entity"
)

// Bottle はセラー内の物理的な1本を表します。
// ワイン削除時は連鎖削除、店削除時はstore_idのみNULLになります。
type Bottle struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	WineID uint `gorm:"not null;index" json:"wine"`
	// 外部キー制約の宣言のためだけに持つ関連。JSONには出さない。
	Wine *wineentity.Wine `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	StoreID *uint               `gorm:"index" json:"store"`
	Store   *storeentity.Store  `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	SizeML       int        `gorm:"default:750" json:"size_ml"`
	Price        *float64   `json:"price"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Consumed     bool       `gorm:"default:false" json:"consumed"`
	ConsumedDate *time.Time `json:"consumed_date"`
}
