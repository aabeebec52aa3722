package usecase_test

import (
	"context"
	"errors"
	"testing"

	"winecellar_backend/internal/feature/wine/domain/entity"
	"winecellar_backend/internal/feature/wine/usecase"
)

// mockWineRepository はWineRepositoryのテスト用モックです。
type mockWineRepository struct {
	listFn   func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error)
	getFn    func(ctx context.Context, id uint) (*entity.Wine, error)
	createFn func(ctx context.Context, wine *entity.Wine) error
	updateFn func(ctx context.Context, wine *entity.Wine) error
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockWineRepository) List(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
	return m.listFn(ctx, filter)
}

func (m *mockWineRepository) Get(ctx context.Context, id uint) (*entity.Wine, error) {
	return m.getFn(ctx, id)
}

func (m *mockWineRepository) Create(ctx context.Context, wine *entity.Wine) error {
	return m.createFn(ctx, wine)
}

func (m *mockWineRepository) Update(ctx context.Context, wine *entity.Wine) error {
	return m.updateFn(ctx, wine)
}

func (m *mockWineRepository) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func TestWineUsecase_List_Ordering(t *testing.T) {
	testCases := []struct {
		name           string
		ordering       string
		expectedPassed string
		expectInvalid  bool
	}{
		{name: "empty defaults to -id", ordering: "", expectedPassed: "-id"},
		{name: "ascending column", ordering: "name", expectedPassed: "name"},
		{name: "descending column", ordering: "-rating", expectedPassed: "-rating"},
		{name: "unknown column rejected", ordering: "price", expectInvalid: true},
		{name: "injection attempt rejected", ordering: "id; DROP TABLE wines", expectInvalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var passed usecase.Filter
			repo := &mockWineRepository{
				listFn: func(ctx context.Context, filter usecase.Filter) ([]entity.Wine, error) {
					passed = filter
					return nil, nil
				},
			}
			uc := usecase.NewWineUsecase(repo)

			_, err := uc.List(context.Background(), usecase.Filter{Ordering: tc.ordering})

			if tc.expectInvalid {
				if !errors.Is(err, usecase.ErrInvalidWine) {
					t.Fatalf("expected ErrInvalidWine, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if passed.Ordering != tc.expectedPassed {
				t.Errorf("ordering mismatch: got %q, want %q", passed.Ordering, tc.expectedPassed)
			}
		})
	}
}

func TestWineUsecase_Create_Validation(t *testing.T) {
	rating := func(v float64) *float64 { return &v }
	wineType := func(v string) *string { return &v }

	testCases := []struct {
		name    string
		wine    *entity.Wine
		wantErr bool
	}{
		{name: "valid wine", wine: &entity.Wine{Name: "Château Test", Rating: rating(4.5)}},
		{name: "name required", wine: &entity.Wine{Name: "  "}, wantErr: true},
		{name: "rating above range", wine: &entity.Wine{Name: "Test", Rating: rating(5.5)}, wantErr: true},
		{name: "rating below range", wine: &entity.Wine{Name: "Test", Rating: rating(-0.1)}, wantErr: true},
		{name: "rating boundary ok", wine: &entity.Wine{Name: "Test", Rating: rating(5.0)}},
		{name: "rating one decimal ok", wine: &entity.Wine{Name: "Test", Rating: rating(4.3)}},
		{name: "rating two decimals rejected", wine: &entity.Wine{Name: "Test", Rating: rating(4.55)}, wantErr: true},
		{name: "valid wine type", wine: &entity.Wine{Name: "Test", WineType: wineType("sparkling")}},
		{name: "unknown wine type", wine: &entity.Wine{Name: "Test", WineType: wineType("orange")}, wantErr: true},
		{name: "nil wine type ok", wine: &entity.Wine{Name: "Test"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			created := false
			repo := &mockWineRepository{
				createFn: func(ctx context.Context, wine *entity.Wine) error {
					created = true
					return nil
				},
			}
			uc := usecase.NewWineUsecase(repo)

			err := uc.Create(context.Background(), tc.wine)

			if tc.wantErr {
				if !errors.Is(err, usecase.ErrInvalidWine) {
					t.Fatalf("expected ErrInvalidWine, got %v", err)
				}
				if created {
					t.Error("repository should not be called for invalid wine")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !created {
				t.Error("repository should be called for valid wine")
			}
		})
	}
}

func TestWineUsecase_Update_NotFound(t *testing.T) {
	repo := &mockWineRepository{
		getFn: func(ctx context.Context, id uint) (*entity.Wine, error) {
			return nil, usecase.ErrWineNotFound
		},
		updateFn: func(ctx context.Context, wine *entity.Wine) error {
			t.Error("update should not be called when wine does not exist")
			return nil
		},
	}
	uc := usecase.NewWineUsecase(repo)

	err := uc.Update(context.Background(), &entity.Wine{ID: 42, Name: "Test"})
	if !errors.Is(err, usecase.ErrWineNotFound) {
		t.Fatalf("expected ErrWineNotFound, got %v", err)
	}
}

func TestWineUsecase_Delete_NotFound(t *testing.T) {
	repo := &mockWineRepository{
		getFn: func(ctx context.Context, id uint) (*entity.Wine, error) {
			return nil, usecase.ErrWineNotFound
		},
		deleteFn: func(ctx context.Context, id uint) error {
			t.Error("delete should not be called when wine does not exist")
			return nil
		},
	}
	uc := usecase.NewWineUsecase(repo)

	err := uc.Delete(context.Background(), 42)
	if !errors.Is(err, usecase.ErrWineNotFound) {
		t.Fatalf("expected ErrWineNotFound, got %v", err)
	}
}
