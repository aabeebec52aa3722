// Package dto はbottleフィーチャーのHTTPリクエスト形式を定義します。
package dto

import "time"

// BottleRequest は作成・全体更新（POST/PUT）のリクエストボディです。
// wineはワインのid、storeは店のid（null可）です。
type BottleRequest struct {
	Wine         uint       `json:"wine" binding:"required"`
	Store        *uint      `json:"store"`
	SizeML       int        `json:"size_ml"`
	Price        *float64   `json:"price"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Consumed     bool       `json:"consumed"`
	ConsumedDate *time.Time `json:"consumed_date"`
}

// ConsumeRequest は消費記録（POST /bottles/:id/consume）のリクエストボディです。
type ConsumeRequest struct {
	ConsumedDate *time.Time `json:"consumed_date"`
}
