// Package handler はbottleフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"winecellar_backend/internal/api"
	"winecellar_backend/internal/feature/bottle/domain/entity"
	"winecellar_backend/internal/feature/bottle/transport/http/dto"
	"winecellar_backend/internal/feature/bottle/usecase"
)

// BottleUsecase はボトルCRUDのユースケースインターフェースを定義します。
type BottleUsecase interface {
	List(ctx context.Context, filter usecase.Filter) ([]entity.Bottle, error)
	Get(ctx context.Context, id uint) (*entity.Bottle, error)
	Create(ctx context.Context, bottle *entity.Bottle) error
	Update(ctx context.Context, bottle *entity.Bottle) error
	Delete(ctx context.Context, id uint) error
	Consume(ctx context.Context, id uint, consumedDate *time.Time) (*entity.Bottle, error)
}

// BottleHandler はボトルのHTTPリクエストを処理します。
type BottleHandler struct {
	uc BottleUsecase
}

// NewBottleHandler はBottleHandlerの新しいインスタンスを生成します。
func NewBottleHandler(uc BottleUsecase) *BottleHandler {
	return &BottleHandler{uc: uc}
}

// List はボトル一覧を返します。
//
// エンドポイント: GET /v1/bottles?wine=&consumed=
func (h *BottleHandler) List(c *gin.Context) {
	var filter usecase.Filter
	if raw := c.Query("wine"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "wineパラメータが不正です"})
			return
		}
		wineID := uint(id)
		filter.WineID = &wineID
	}
	if raw := c.Query("consumed"); raw != "" {
		consumed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "consumedパラメータが不正です"})
			return
		}
		filter.Consumed = &consumed
	}

	bottles, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("ボトル一覧の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "ボトル一覧の取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, bottles)
}

// Get はボトルを1件返します。 GET /v1/bottles/:id
func (h *BottleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bottle, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "ボトルの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, bottle)
}

// Create はボトルを登録します。 POST /v1/bottles
func (h *BottleHandler) Create(c *gin.Context) {
	var req dto.BottleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "wineは必須です"})
		return
	}
	bottle := fromRequest(&req)
	if err := h.uc.Create(c.Request.Context(), bottle); err != nil {
		h.respondError(c, err, "ボトルの登録に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, bottle)
}

// Update はボトルを全フィールド置き換えます。 PUT /v1/bottles/:id
func (h *BottleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BottleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "wineは必須です"})
		return
	}
	bottle := fromRequest(&req)
	bottle.ID = id
	if err := h.uc.Update(c.Request.Context(), bottle); err != nil {
		h.respondError(c, err, "ボトルの更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, bottle)
}

// Consume はボトルを消費済みにします。 POST /v1/bottles/:id/consume
func (h *BottleHandler) Consume(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "リクエストボディが不正です"})
		return
	}
	bottle, err := h.uc.Consume(c.Request.Context(), id, req.ConsumedDate)
	if err != nil {
		h.respondError(c, err, "消費の記録に失敗しました")
		return
	}
	c.JSON(http.StatusOK, bottle)
}

// Delete はボトルを削除します。 DELETE /v1/bottles/:id
func (h *BottleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "ボトルの削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BottleHandler) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, usecase.ErrBottleNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "ボトルが見つかりません"})
	case errors.Is(err, usecase.ErrInvalidBottle):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(message, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: message})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "ボトルが見つかりません"})
		return 0, false
	}
	return uint(id), true
}

func fromRequest(req *dto.BottleRequest) *entity.Bottle {
	return &entity.Bottle{
		WineID:       req.Wine,
		StoreID:      req.Store,
		SizeML:       req.SizeML,
		Price:        req.Price,
		PurchaseDate: req.PurchaseDate,
		Consumed:     req.Consumed,
		ConsumedDate: req.ConsumedDate,
	}
}
