// Package usecase はlabelanalysisフィーチャーのビジネスロジックを実装します。
//
// パイプラインは 画像正規化 → 外部ビジョンモデル推論 → 応答パース →
// 産地ファジー照合 → 結果組み立て を1回の呼び出し内で順に実行します。
// 呼び出し間で共有する可変状態はなく、どの段階でも内部リトライは行いません。
package usecase

import (
	"context"
	"fmt"

	"winecellar_backend/internal/feature/labelanalysis/domain"
	"winecellar_backend/internal/feature/labelanalysis/domain/entity"
)

// MaxImageBytes は画像アップロードの最大サイズ（10MB）です。
const MaxImageBytes = 10 * 1024 * 1024

// LabelReader は画像とプロンプトを外部マルチモーダルモデルへ送り、
// 自由形式のテキスト応答を返すリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LabelReader interface {
	// ReadLabel は正規化済みJPEG画像を解析し、モデルの応答テキストを返します。
	// 失敗はdomainパッケージのエラー種別のいずれかにマップされます。
	ReadLabel(ctx context.Context, prompt string, imageJPEG []byte) (string, error)
}

// RegionCatalog は読み取り専用の産地カタログへの問い合わせインターフェースです。
type RegionCatalog interface {
	// ListCandidates は照合候補を返します。countryHintが空でない場合、
	// その国の候補を先頭ブロックに、残りを後続に並べます（各ブロックid昇順）。
	ListCandidates(ctx context.Context, countryHint string) ([]entity.RegionCandidate, error)
}

// LabelAnalysisUsecase はラベル解析パイプラインのオーケストレータです。
type LabelAnalysisUsecase struct {
	reader  LabelReader
	catalog RegionCatalog
	maxDim  int
}

// NewLabelAnalysisUsecase はLabelAnalysisUsecaseの新しいインスタンスを生成します。
// maxDimが0以下の場合はDefaultMaxDimensionを使用します。
func NewLabelAnalysisUsecase(reader LabelReader, catalog RegionCatalog, maxDim int) *LabelAnalysisUsecase {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	return &LabelAnalysisUsecase{reader: reader, catalog: catalog, maxDim: maxDim}
}

// AnalyzeLabel はラベル画像を解析して構造化された結果を返します。
// 失敗は必ずdomainパッケージのエラー種別のいずれかを包んで返ります。
// どの段階の失敗もその呼び出しにとって終端で、内部リトライはしません。
func (u *LabelAnalysisUsecase) AnalyzeLabel(ctx context.Context, raw []byte) (*entity.AnalysisResult, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidImage)
	}
	if len(raw) > MaxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidImage, MaxImageBytes)
	}

	// 1. 正規化。外部呼び出しの前に不正画像をここで弾く。
	normalized, err := NormalizeImage(raw, u.maxDim)
	if err != nil {
		return nil, err
	}

	// 2. 推論。
	rawText, err := u.reader.ReadLabel(ctx, AnalysisPrompt, normalized)
	if err != nil {
		return nil, err
	}

	// 3. パースとwine_typeの検証。
	payload, err := parseVisionResponse(rawText)
	if err != nil {
		return nil, err
	}
	attrs := payload.attributes()

	// 4. 産地照合。産地名がなければカタログには触れない。
	var matched *entity.MatchedRegion
	if payload.Region != nil && *payload.Region != "" {
		hint := ""
		if payload.Country != nil {
			hint = *payload.Country
		}
		candidates, err := u.catalog.ListCandidates(ctx, hint)
		if err != nil {
			return nil, fmt.Errorf("list region candidates: %w", err)
		}
		matched = ResolveRegion(*payload.Region, hint, candidates)
	}

	// 5. 結果の組み立て。
	return &entity.AnalysisResult{
		Success:       true,
		Attributes:    attrs,
		MatchedRegion: matched,
		Confidence:    payload.confidence(),
		RawText:       payload.RawText,
	}, nil
}
