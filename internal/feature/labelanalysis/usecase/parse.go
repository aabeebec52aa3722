package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"winecellar_backend/internal/feature/labelanalysis/domain"
	"winecellar_backend/internal/feature/labelanalysis/domain/entity"
)

// AnalysisPrompt はラベル抽出用の固定プロンプトです。プロセス全体で不変です。
// フィールド一覧・許可されるwine_typeの値・国コード形式・信頼度の意味を
// モデルに明示し、JSONのみを返すよう指示します。
const AnalysisPrompt = `Analyze this wine bottle label image and extract the following information.
Return a JSON object with these fields:

{
  "name": "The wine name/brand (string or null)",
  "vintage": "The year the wine was produced (integer or null)",
  "wine_type": "One of: red, white, rosé, sparkling (string or null)",
  "country": "ISO 3166-1 alpha-2 country code, e.g. FR, IT, ES (string or null)",
  "region": "Wine region or appellation, e.g. Bordeaux, Rioja, Chianti (string or null)",
  "grape_varieties": "Comma-separated list of grape varieties (string or null)",
  "alcohol_percentage": "Alcohol percentage as decimal, e.g. 13.5 (number or null)",
  "confidence": {
    "name": 0.0-1.0,
    "vintage": 0.0-1.0,
    "wine_type": 0.0-1.0,
    "country": 0.0-1.0,
    "region": 0.0-1.0,
    "grape_varieties": 0.0-1.0,
    "alcohol_percentage": 0.0-1.0
  },
  "raw_text": "All readable text from the label"
}

Important:
- Use null for any field you cannot determine with reasonable confidence
- For country, always use ISO 3166-1 alpha-2 codes (FR, IT, ES, DE, US, AU, etc.)
- For wine_type, only use: red, white, rosé, sparkling
- Confidence scores should reflect how certain you are about each field (0.0 = guess, 1.0 = certain)
- Include ALL readable text in raw_text for transparency

Return ONLY valid JSON, no markdown formatting or explanation.`

// visionPayload はモデル応答のJSON構造です。パース後は破棄されます。
type visionPayload struct {
	Name              *string            `json:"name"`
	Vintage           *int               `json:"vintage"`
	WineType          *string            `json:"wine_type"`
	Country           *string            `json:"country"`
	Region            *string            `json:"region"`
	GrapeVarieties    *string            `json:"grape_varieties"`
	AlcoholPercentage *float64           `json:"alcohol_percentage"`
	Confidence        map[string]float64 `json:"confidence"`
	RawText           string             `json:"raw_text"`
}

// parseVisionResponse はモデルの自由形式テキストからJSONペイロードを取り出します。
// コードフェンスは除去し、空応答とパース不能な応答はそれぞれ別のエラー種別にします。
func parseVisionResponse(raw string) (*visionPayload, error) {
	content := stripCodeFences(raw)
	if content == "" {
		return nil, domain.ErrEmptyResponse
	}

	var payload visionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparsableResponse, err)
	}
	return &payload, nil
}

// stripCodeFences はモデルが付けがちな ```json 〜 ``` マーカーを取り除きます。
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// attributes はペイロードをドメインの属性へ変換します。
// wine_typeが許可された4値以外の場合はnilに落とし、結果全体は成功のまま扱います。
func (p *visionPayload) attributes() entity.WineAttributes {
	attrs := entity.WineAttributes{
		Name:                p.Name,
		Vintage:             p.Vintage,
		WineType:            p.WineType,
		Country:             p.Country,
		GrapeVarieties:      p.GrapeVarieties,
		AlcoholPercentage:   p.AlcoholPercentage,
		SuggestedRegionName: p.Region,
	}
	if attrs.WineType != nil && !isValidWineType(*attrs.WineType) {
		attrs.WineType = nil
	}
	return attrs
}

// confidence はモデルが返した信頼度をフィールド別構造体へ写します。
// 欠けているフィールドは0.0のままです。
func (p *visionPayload) confidence() entity.FieldConfidence {
	return entity.FieldConfidence{
		Name:              p.Confidence["name"],
		Vintage:           p.Confidence["vintage"],
		WineType:          p.Confidence["wine_type"],
		Country:           p.Confidence["country"],
		Region:            p.Confidence["region"],
		GrapeVarieties:    p.Confidence["grape_varieties"],
		AlcoholPercentage: p.Confidence["alcohol_percentage"],
	}
}

func isValidWineType(v string) bool {
	for _, t := range entity.WineTypes {
		if v == t {
			return true
		}
	}
	return false
}
