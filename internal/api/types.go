// Package api はHTTP境界で共有するレスポンスDTOを定義します。
package api

// ErrorResponse はエラー応答の共通形式です。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MatchedRegionResponse はカタログに対応付いた産地のレスポンス形式です。
type MatchedRegionResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	MatchScore float64 `json:"match_score"`
}

// LabelAnalysisData はラベル解析で抽出した属性のレスポンス形式です。
// 判定できなかったフィールドはnullになります。
type LabelAnalysisData struct {
	Name                *string                `json:"name"`
	Vintage             *int                   `json:"vintage"`
	WineType            *string                `json:"wine_type"`
	Country             *string                `json:"country"`
	GrapeVarieties      *string                `json:"grape_varieties"`
	AlcoholPercentage   *float64               `json:"alcohol_percentage"`
	SuggestedRegionName *string                `json:"suggested_region_name"`
	MatchedRegion       *MatchedRegionResponse `json:"matched_region"`
}

// LabelConfidenceResponse はフィールド別信頼度のレスポンス形式です。
// モデルが返さなかったフィールドは0で出力します（キーは省略しません）。
type LabelConfidenceResponse struct {
	Name              float64 `json:"name"`
	Vintage           float64 `json:"vintage"`
	WineType          float64 `json:"wine_type"`
	Country           float64 `json:"country"`
	Region            float64 `json:"region"`
	GrapeVarieties    float64 `json:"grape_varieties"`
	AlcoholPercentage float64 `json:"alcohol_percentage"`
}

// LabelAnalysisResponse はラベル解析エンドポイントの成功応答です。
type LabelAnalysisResponse struct {
	Success    bool                    `json:"success"`
	Data       LabelAnalysisData       `json:"data"`
	Confidence LabelConfidenceResponse `json:"confidence"`
	RawText    string                  `json:"raw_text"`
}
