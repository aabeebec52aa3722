// Package handler はregionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"winecellar_backend/internal/api"
	"winecellar_backend/internal/feature/region/domain/entity"
	"winecellar_backend/internal/feature/region/usecase"
)

// RegionUsecase は産地カタログのユースケースインターフェースを定義します。
type RegionUsecase interface {
	List(ctx context.Context, country string) ([]entity.Region, error)
	Get(ctx context.Context, id uint) (*entity.Region, error)
	Create(ctx context.Context, region *entity.Region) error
	Update(ctx context.Context, region *entity.Region) error
	Delete(ctx context.Context, id uint) error
}

// regionRequest は作成・更新のリクエストボディです。
type regionRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// RegionHandler は産地カタログのHTTPリクエストを処理します。
type RegionHandler struct {
	uc RegionUsecase
}

// NewRegionHandler はRegionHandlerの新しいインスタンスを生成します。
func NewRegionHandler(uc RegionUsecase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

// List は産地一覧を返します。 GET /v1/regions?country=
func (h *RegionHandler) List(c *gin.Context) {
	regions, err := h.uc.List(c.Request.Context(), c.Query("country"))
	if err != nil {
		slog.Error("産地一覧の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "産地一覧の取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, regions)
}

// Get は産地を1件返します。 GET /v1/regions/:id
func (h *RegionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	region, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "産地の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, region)
}

// Create は産地を登録します。 POST /v1/regions
func (h *RegionHandler) Create(c *gin.Context) {
	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "名前と国コードは必須です"})
		return
	}
	region := &entity.Region{Name: req.Name, Country: req.Country}
	if err := h.uc.Create(c.Request.Context(), region); err != nil {
		h.respondError(c, err, "産地の登録に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, region)
}

// Update は産地を更新します。 PUT /v1/regions/:id
func (h *RegionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "名前と国コードは必須です"})
		return
	}
	region := &entity.Region{ID: id, Name: req.Name, Country: req.Country}
	if err := h.uc.Update(c.Request.Context(), region); err != nil {
		h.respondError(c, err, "産地の更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, region)
}

// Delete は産地を削除します。 DELETE /v1/regions/:id
func (h *RegionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "産地の削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RegionHandler) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, usecase.ErrRegionNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "産地が見つかりません"})
	case errors.Is(err, usecase.ErrInvalidRegion):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(message, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: message})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "産地が見つかりません"})
		return 0, false
	}
	return uint(id), true
}
