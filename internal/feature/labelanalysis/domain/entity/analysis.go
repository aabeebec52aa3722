// Package entity はlabelanalysisフィーチャーのドメインモデルを定義します。
package entity

// WineTypes はwine_typeとして許可される値の一覧です。
// この集合に含まれない値は解析結果から除外されます（エラーにはしません）。
var WineTypes = []string{"red", "white", "rosé", "sparkling"}

// WineAttributes はラベル画像から抽出したワインの属性を表します。
// すべてのフィールドは任意で、モデルが判定できなかったものはnilになります。
type WineAttributes struct {
	Name                *string // ワイン名・ブランド名
	Vintage             *int    // 収穫年
	WineType            *string // red / white / rosé / sparkling
	Country             *string // ISO 3166-1 alpha-2 国コード
	GrapeVarieties      *string // ブドウ品種（カンマ区切り）
	AlcoholPercentage   *float64
	SuggestedRegionName *string // ラベルに記載された産地名（カタログ照合前）
}

// FieldConfidence は抽出フィールドごとの信頼度（0.0〜1.0）を表します。
// モデルが信頼度を返さなかったフィールドは0.0のままです。
type FieldConfidence struct {
	Name              float64
	Vintage           float64
	WineType          float64
	Country           float64
	Region            float64
	GrapeVarieties    float64
	AlcoholPercentage float64
}

// RegionCandidate は産地カタログから取得した照合候補です。読み取り専用です。
type RegionCandidate struct {
	ID      uint
	Name    string
	Country string
}

// MatchedRegion はファジーマッチでカタログに対応付いた産地です。
// MatchScoreは0.0〜1.0のスコアで、閾値未満の場合はMatchedRegion自体が返りません。
type MatchedRegion struct {
	ID         uint
	Name       string
	Country    string
	MatchScore float64
}

// AnalysisResult はラベル解析パイプラインの最終出力です。
// 構築後は変更されず、呼び出し元が永続化するかどうかを判断します。
type AnalysisResult struct {
	Success       bool
	Attributes    WineAttributes
	MatchedRegion *MatchedRegion // マッチなしの場合はnil（エラーではない）
	Confidence    FieldConfidence
	RawText       string // ラベルから読み取れた全テキスト（モデル未返却時は空文字）
}
