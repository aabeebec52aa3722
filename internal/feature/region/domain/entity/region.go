// Package entity はregionフィーチャーのドメインモデルを定義します。
package entity

// Region はワイン産地カタログの1エントリを表します。
// ラベル解析のファジー照合候補としても参照されます。
type Region struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Country string `gorm:"size:2;not null;index" json:"country"` // ISO 3166-1 alpha-2
}
