package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"winecellar_backend/internal/feature/wine/domain/entity"
	"winecellar_backend/internal/feature/wine/transport/handler"
	"winecellar_backend/internal/feature/wine/usecase"
)

// mockWineUsecase はWineUsecaseインターフェースのモック実装です。
type mockWineUsecase struct {
	ListFunc   func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Wine, error)
	CreateFunc func(ctx context.Context, wine *entity.Wine) error
	UpdateFunc func(ctx context.Context, wine *entity.Wine) error
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockWineUsecase) List(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockWineUsecase) Get(ctx context.Context, id uint) (*entity.Wine, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockWineUsecase) Create(ctx context.Context, wine *entity.Wine) error {
	return m.CreateFunc(ctx, wine)
}

func (m *mockWineUsecase) Update(ctx context.Context, wine *entity.Wine) error {
	return m.UpdateFunc(ctx, wine)
}

func (m *mockWineUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func setupRouter(uc *mockWineUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handler.NewWineHandler(uc)
	r := gin.New()
	r.GET("/v1/wines", h.List)
	r.POST("/v1/wines", h.Create)
	r.GET("/v1/wines/:id", h.Get)
	r.PUT("/v1/wines/:id", h.Update)
	r.PATCH("/v1/wines/:id", h.Patch)
	r.DELETE("/v1/wines/:id", h.Delete)
	return r
}

func TestWineHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockFunc       func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error)
		expectedStatus int
	}{
		{
			name: "success: query params passed to filter",
			url:  "/v1/wines?search=bordeaux&wine_type=red&ordering=-rating",
			mockFunc: func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
				assert.Equal(t, "bordeaux", filter.Search)
				assert.Equal(t, "red", filter.WineType)
				assert.Equal(t, "-rating", filter.Ordering)
				return []entity.Wine{{ID: 1, Name: "Bordeaux Blend"}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error: invalid ordering maps to 400",
			url:  "/v1/wines?ordering=price",
			mockFunc: func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
				return nil, usecase.ErrInvalidWine
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error: repository failure maps to 500",
			url:  "/v1/wines",
			mockFunc: func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
				return nil, errors.New("db connection lost")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockWineUsecase{ListFunc: tt.mockFunc})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestWineHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockFunc       func(ctx context.Context, id uint) (*entity.Wine, error)
		expectedStatus int
	}{
		{
			name: "success",
			url:  "/v1/wines/1",
			mockFunc: func(ctx context.Context, id uint) (*entity.Wine, error) {
				assert.Equal(t, uint(1), id)
				return &entity.Wine{ID: 1, Name: "Château Test"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			url:  "/v1/wines/42",
			mockFunc: func(ctx context.Context, id uint) (*entity.Wine, error) {
				return nil, usecase.ErrWineNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			url:            "/v1/wines/abc",
			mockFunc:       nil,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockWineUsecase{GetFunc: tt.mockFunc})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestWineHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, wine *entity.Wine) error
		expectedStatus int
	}{
		{
			name: "success returns 201",
			body: `{"name":"Château Test","wine_type":"red","rating":4.5}`,
			mockFunc: func(ctx context.Context, wine *entity.Wine) error {
				assert.Equal(t, "Château Test", wine.Name)
				wine.ID = 1
				return nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name rejected by binding",
			body:           `{"wine_type":"red"}`,
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation error maps to 400",
			body: `{"name":"Test","rating":5.5}`,
			mockFunc: func(ctx context.Context, wine *entity.Wine) error {
				return usecase.ErrInvalidWine
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockWineUsecase{CreateFunc: tt.mockFunc})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/wines", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestWineHandler_Patch は指定フィールドのみ更新され、他は保持されることを検証します。
func TestWineHandler_Patch(t *testing.T) {
	rating := 4.0
	existing := entity.Wine{ID: 1, Name: "Original", Rating: &rating}

	var updated *entity.Wine
	uc := &mockWineUsecase{
		GetFunc: func(ctx context.Context, id uint) (*entity.Wine, error) {
			w := existing
			return &w, nil
		},
		UpdateFunc: func(ctx context.Context, wine *entity.Wine) error {
			updated = wine
			return nil
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/wines/1", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, &rating, updated.Rating, "untouched fields must be preserved")
}

func TestWineHandler_Delete(t *testing.T) {
	uc := &mockWineUsecase{
		DeleteFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(1), id)
			return nil
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/wines/1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
