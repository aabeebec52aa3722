// Package dto はwineフィーチャーのHTTPリクエスト形式を定義します。
package dto

// WineRequest は作成・全体更新（POST/PUT）のリクエストボディです。
type WineRequest struct {
	Name           string   `json:"name" binding:"required"`
	Region         *string  `json:"region"`
	Country        *string  `json:"country"`
	Vintage        *uint    `json:"vintage"`
	GrapeVarieties *string  `json:"grape_varieties"`
	WineType       *string  `json:"wine_type"`
	Rating         *float64 `json:"rating"`
	Notes          string   `json:"notes"`
}

// WinePatchRequest は部分更新（PATCH）のリクエストボディです。
// nilのフィールドは変更しません。
type WinePatchRequest struct {
	Name           *string  `json:"name"`
	Region         *string  `json:"region"`
	Country        *string  `json:"country"`
	Vintage        *uint    `json:"vintage"`
	GrapeVarieties *string  `json:"grape_varieties"`
	WineType       *string  `json:"wine_type"`
	Rating         *float64 `json:"rating"`
	Notes          *string  `json:"notes"`
}
