// Package entity はstoreフィーチャーのドメインモデルを定義します。
package entity

// Store はボトルの購入店を表します。
type Store struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;not null" json:"name"`
}
