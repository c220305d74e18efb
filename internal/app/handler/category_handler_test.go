package handler

import (
	"net/http"
	"testing"

	"shopadmin/internal/app/dto"
	"shopadmin/internal/app/role"
)

func TestCategoryAccessControl(t *testing.T) {
	api := newTestAPI(t)

	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)
	customerToken, _ := api.tokenFor(t, "customer@shop.com", role.Customer)

	body := dto.CreateCategoryRequest{Name: "Electronics"}

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"customer token", customerToken, http.StatusForbidden},
		{"admin token", adminToken, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, http.MethodPost, "/api/categories", tt.token, body)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestCategoryCRUD(t *testing.T) {
	api := newTestAPI(t)
	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)

	// Создание
	w := api.do(t, http.MethodPost, "/api/categories", adminToken, dto.CreateCategoryRequest{
		Name:        "Electronics",
		Description: "Phones and laptops",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created dto.CategoryResponse
	decodeJSON(t, w, &created)

	// Дубликат
	w = api.do(t, http.MethodPost, "/api/categories", adminToken, dto.CreateCategoryRequest{
		Name: "electronics",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", w.Code)
	}

	// Публичное чтение без токена
	w = api.do(t, http.MethodGet, "/api/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list dto.CategoryListResponse
	decodeJSON(t, w, &list)
	if list.Total != 1 || list.Categories[0].Name != "Electronics" {
		t.Errorf("unexpected list: %+v", list)
	}

	// Обновление
	w = api.do(t, http.MethodPut, "/api/categories/1", adminToken, dto.UpdateCategoryRequest{
		Name: "Gadgets",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated dto.CategoryResponse
	decodeJSON(t, w, &updated)
	if updated.Name != "Gadgets" {
		t.Errorf("expected Gadgets, got %q", updated.Name)
	}

	// Удаление
	w = api.do(t, http.MethodDelete, "/api/categories/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/api/categories/1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCategoryBadInput(t *testing.T) {
	api := newTestAPI(t)
	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)

	// Имя обязательно
	w := api.do(t, http.MethodPost, "/api/categories", adminToken, dto.CreateCategoryRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	// Неверный ID
	w = api.do(t, http.MethodGet, "/api/categories/abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got %d", w.Code)
	}
}
