package usecase

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"winecellar_backend/internal/feature/labelanalysis/domain/entity"
)

const (
	// matchThreshold はマッチとして採用する最低スコア（0〜100）です。
	// これ未満は「低信頼のマッチ」ではなく「マッチなし」として扱います。
	matchThreshold = 80
	// countryBoost は候補の国がヒントと一致したときの加点です。100で頭打ちになります。
	countryBoost = 10
)

// ResolveRegion はモデルが示した産地名をカタログ候補とファジーマッチングし、
// 閾値以上の最良候補を返します。マッチしない場合はnilを返します（エラーではない）。
//
// スコアは大文字小文字を無視した類似度（0〜100）で、国一致時にcountryBoostを
// 加算します。同点の場合は先に現れた候補が勝つため、候補列の順序が結果を
// 決めます（カタログアダプタはid昇順で決定的な順序を返します）。
func ResolveRegion(suggested, countryHint string, candidates []entity.RegionCandidate) *entity.MatchedRegion {
	if suggested == "" || len(candidates) == 0 {
		return nil
	}

	suggestedLower := strings.ToLower(suggested)

	var best *entity.RegionCandidate
	bestScore := 0
	for i := range candidates {
		c := &candidates[i]
		score := fuzzy.Ratio(suggestedLower, strings.ToLower(c.Name))
		if countryHint != "" && c.Country == countryHint {
			score = min(100, score+countryBoost)
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if best == nil || bestScore < matchThreshold {
		return nil
	}
	return &entity.MatchedRegion{
		ID:         best.ID,
		Name:       best.Name,
		Country:    best.Country,
		MatchScore: float64(bestScore) / 100.0,
	}
}
