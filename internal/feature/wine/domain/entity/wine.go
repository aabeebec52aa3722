// Package entity はwineフィーチャーのドメインモデルを定義します。
package entity

// Wine はセラーに登録されたワイン1銘柄を表します。
// Regionはラベル表記の自由入力で、産地カタログ（regionフィーチャー）とは独立です。
type Wine struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `gorm:"size:200;not null" json:"name"`
	Region         *string  `gorm:"size:200" json:"region"`
	Country        *string  `gorm:"size:100" json:"country"`
	Vintage        *uint    `json:"vintage"`
	GrapeVarieties *string  `gorm:"size:255" json:"grape_varieties"`
	WineType       *string  `gorm:"size:50" json:"wine_type"`
	Rating         *float64 `json:"rating"`
	Notes          string   `gorm:"type:text" json:"notes"`

	// 未消費ボトル数。一覧・詳細取得時にサブクエリで集計される読み取り専用値。
	BottleCount int64 `gorm:"->;-:migration" json:"bottle_count"`
}
