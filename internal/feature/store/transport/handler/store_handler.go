// Package handler はstoreフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"winecellar_backend/internal/api"
	"winecellar_backend/internal/feature/store/domain/entity"
	"winecellar_backend/internal/feature/store/usecase"
)

// StoreUsecase は店CRUDのユースケースインターフェースを定義します。
type StoreUsecase interface {
	List(ctx context.Context) ([]entity.Store, error)
	Get(ctx context.Context, id uint) (*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uint) error
}

// storeRequest は作成・更新のリクエストボディです。
type storeRequest struct {
	Name string `json:"name" binding:"required"`
}

// StoreHandler は店のHTTPリクエストを処理します。
type StoreHandler struct {
	uc StoreUsecase
}

// NewStoreHandler はStoreHandlerの新しいインスタンスを生成します。
func NewStoreHandler(uc StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List は店一覧を返します。 GET /v1/stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("店一覧の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "店一覧の取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// Get は店を1件返します。 GET /v1/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	store, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "店の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, store)
}

// Create は店を登録します。 POST /v1/stores
func (h *StoreHandler) Create(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "名前は必須です"})
		return
	}
	store := &entity.Store{Name: req.Name}
	if err := h.uc.Create(c.Request.Context(), store); err != nil {
		h.respondError(c, err, "店の登録に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, store)
}

// Update は店名を更新します。 PUT /v1/stores/:id
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "名前は必須です"})
		return
	}
	store := &entity.Store{ID: id, Name: req.Name}
	if err := h.uc.Update(c.Request.Context(), store); err != nil {
		h.respondError(c, err, "店の更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, store)
}

// Delete は店を削除します。ボトルのstore参照はNULLになります。 DELETE /v1/stores/:id
func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "店の削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StoreHandler) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, usecase.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "店が見つかりません"})
	case errors.Is(err, usecase.ErrInvalidStore):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(message, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: message})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "店が見つかりません"})
		return 0, false
	}
	return uint(id), true
}
