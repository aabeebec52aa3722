// Package handler はlabelanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"winecellar_backend/internal/api"
	"winecellar_backend/internal/feature/labelanalysis/domain"
	"winecellar_backend/internal/feature/labelanalysis/domain/entity"
)

// LabelAnalysisUsecase はラベル解析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LabelAnalysisUsecase interface {
	AnalyzeLabel(ctx context.Context, raw []byte) (*entity.AnalysisResult, error)
}

// LabelAnalysisHandler はラベル解析のHTTPリクエストを処理します。
type LabelAnalysisHandler struct {
	uc LabelAnalysisUsecase
}

// NewLabelAnalysisHandler はLabelAnalysisHandlerの新しいインスタンスを生成します。
func NewLabelAnalysisHandler(uc LabelAnalysisUsecase) *LabelAnalysisHandler {
	return &LabelAnalysisHandler{uc: uc}
}

// AnalyzeLabel はラベル画像をアップロードして構造化されたワイン情報を抽出します。
//
// エンドポイント: POST /v1/wines/analyze-label
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
//
// ステータスの対応: 不正画像→400、解析パイプラインの失敗→422、その他→500。
// 内部のエラー分類はログにのみ残し、応答には定型メッセージを返します。
func (h *LabelAnalysisHandler) AnalyzeLabel(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	raw, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	result, err := h.uc.AnalyzeLabel(c.Request.Context(), raw)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

// respondError はエラー種別をHTTPステータスへ写します。
func (h *LabelAnalysisHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		slog.Warn("不正な画像アップロード", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: domain.ErrInvalidImage.Error()})
	case domain.IsAnalysisError(err):
		slog.Error("ラベル解析に失敗", "error", err)
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: analysisMessage(err)})
	default:
		slog.Error("ラベル解析で予期しないエラー", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "ラベル解析に失敗しました"})
	}
}

// analysisMessage は応答に載せる定型メッセージを返します。
// アップストリーム由来の生メッセージはここでは返しません（ログ側にのみ残る）。
func analysisMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrNotConfigured,
		domain.ErrEmptyResponse,
		domain.ErrUnparsableResponse,
		domain.ErrUpstreamThrottled,
		domain.ErrUpstreamUnavailable,
		domain.ErrUpstreamError,
		domain.ErrInference,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return domain.ErrInference.Error()
}

// toResponse はドメインの解析結果をAPIのレスポンス形式へ写します。
func toResponse(result *entity.AnalysisResult) api.LabelAnalysisResponse {
	var matched *api.MatchedRegionResponse
	if result.MatchedRegion != nil {
		matched = &api.MatchedRegionResponse{
			ID:         result.MatchedRegion.ID,
			Name:       result.MatchedRegion.Name,
			Country:    result.MatchedRegion.Country,
			MatchScore: result.MatchedRegion.MatchScore,
		}
	}
	return api.LabelAnalysisResponse{
		Success: result.Success,
		Data: api.LabelAnalysisData{
			Name:                result.Attributes.Name,
			Vintage:             result.Attributes.Vintage,
			WineType:            result.Attributes.WineType,
			Country:             result.Attributes.Country,
			GrapeVarieties:      result.Attributes.GrapeVarieties,
			AlcoholPercentage:   result.Attributes.AlcoholPercentage,
			SuggestedRegionName: result.Attributes.SuggestedRegionName,
			MatchedRegion:       matched,
		},
		Confidence: api.LabelConfidenceResponse{
			Name:              result.Confidence.Name,
			Vintage:           result.Confidence.Vintage,
			WineType:          result.Confidence.WineType,
			Country:           result.Confidence.Country,
			Region:            result.Confidence.Region,
			GrapeVarieties:    result.Confidence.GrapeVarieties,
			AlcoholPercentage: result.Confidence.AlcoholPercentage,
		},
		RawText: result.RawText,
	}
}
