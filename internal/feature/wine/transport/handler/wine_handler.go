// Package handler はwineフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"winecellar_backend/internal/api"
	"winecellar_backend/internal/feature/wine/domain/entity"
	"winecellar_backend/internal/feature/wine/transport/http/dto"
	"winecellar_backend/internal/feature/wine/usecase"
)

// WineUsecase はワインCRUDのユースケースインターフェースを定義します。
type WineUsecase interface {
	List(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error)
	Get(ctx context.Context, id uint) (*entity.Wine, error)
	Create(ctx context.Context, wine *entity.Wine) error
	Update(ctx context.Context, wine *entity.Wine) error
	Delete(ctx context.Context, id uint) error
}

// WineHandler はワインのHTTPリクエストを処理します。
type WineHandler struct {
	uc WineUsecase
}

// NewWineHandler はWineHandlerの新しいインスタンスを生成します。
func NewWineHandler(uc WineUsecase) *WineHandler {
	return &WineHandler{uc: uc}
}

// List はワイン一覧を返します。
//
// エンドポイント: GET /v1/wines?search=&wine_type=&country=&ordering=
func (h *WineHandler) List(c *gin.Context) {
	filter := usecase.Filter{
		Search:   c.Query("search"),
		WineType: c.Query("wine_type"),
		Country:  c.Query("country"),
		Ordering: c.Query("ordering"),
	}

	wines, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidWine) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("ワイン一覧の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "ワイン一覧の取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, wines)
}

// Get はワインを1件返します。
//
// エンドポイント: GET /v1/wines/:id
func (h *WineHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wine, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "ワインの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, wine)
}

// Create はワインを登録します。
//
// エンドポイント: POST /v1/wines
func (h *WineHandler) Create(c *gin.Context) {
	var req dto.WineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "名前は必須です"})
		return
	}

	wine := fromRequest(&req)
	if err := h.uc.Create(c.Request.Context(), wine); err != nil {
		h.respondError(c, err, "ワインの登録に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, wine)
}

// Update はワインを全フィールド置き換えます。
//
// エンドポイント: PUT /v1/wines/:id
func (h *WineHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.WineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "名前は必須です"})
		return
	}

	wine := fromRequest(&req)
	wine.ID = id
	if err := h.uc.Update(c.Request.Context(), wine); err != nil {
		h.respondError(c, err, "ワインの更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, wine)
}

// Patch は指定されたフィールドだけを更新します。
//
// エンドポイント: PATCH /v1/wines/:id
func (h *WineHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.WinePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "リクエストボディが不正です"})
		return
	}

	wine, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "ワインの更新に失敗しました")
		return
	}
	applyPatch(wine, &req)

	if err := h.uc.Update(c.Request.Context(), wine); err != nil {
		h.respondError(c, err, "ワインの更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, wine)
}

// Delete はワインを削除します。関連ボトルは連鎖削除されます。
//
// エンドポイント: DELETE /v1/wines/:id
func (h *WineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "ワインの削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WineHandler) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, usecase.ErrWineNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "ワインが見つかりません"})
	case errors.Is(err, usecase.ErrInvalidWine):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(message, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: message})
	}
}

// parseID は:idパスパラメータを解析します。不正な場合は404を応答済みにします。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "ワインが見つかりません"})
		return 0, false
	}
	return uint(id), true
}

func fromRequest(req *dto.WineRequest) *entity.Wine {
	return &entity.Wine{
		Name:           req.Name,
		Region:         req.Region,
		Country:        req.Country,
		Vintage:        req.Vintage,
		GrapeVarieties: req.GrapeVarieties,
		WineType:       req.WineType,
		Rating:         req.Rating,
		Notes:          req.Notes,
	}
}

func applyPatch(wine *entity.Wine, req *dto.WinePatchRequest) {
	if req.Name != nil {
		wine.Name = *req.Name
	}
	if req.Region != nil {
		wine.Region = req.Region
	}
	if req.Country != nil {
		wine.Country = req.Country
	}
	if req.Vintage != nil {
		wine.Vintage = req.Vintage
	}
	if req.GrapeVarieties != nil {
		wine.GrapeVarieties = req.GrapeVarieties
	}
	if req.WineType != nil {
		wine.WineType = req.WineType
	}
	if req.Rating != nil {
		wine.Rating = req.Rating
	}
	if req.Notes != nil {
		wine.Notes = *req.Notes
	}
}
