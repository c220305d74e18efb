package handler

import (
	"net/http"
	"testing"

	"shopadmin/internal/app/dto"
	"shopadmin/internal/app/role"
)

func createTestCategory(t *testing.T, api *testAPI, token, name string) dto.CategoryResponse {
	t.Helper()
	w := api.do(t, http.MethodPost, "/api/categories", token, dto.CreateCategoryRequest{Name: name})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create category: %d %s", w.Code, w.Body.String())
	}
	var category dto.CategoryResponse
	decodeJSON(t, w, &category)
	return category
}

func TestProductCRUD(t *testing.T) {
	api := newTestAPI(t)
	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)
	category := createTestCategory(t, api, adminToken, "Electronics")

	discount := 80.0
	w := api.do(t, http.MethodPost, "/api/products", adminToken, dto.CreateProductRequest{
		Name:          "Phone",
		Description:   "A phone",
		Price:         100,
		DiscountPrice: &discount,
		Stock:         5,
		CategoryID:    category.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created dto.ProductResponse
	decodeJSON(t, w, &created)
	if created.Stock != 5 || created.Price != 100 {
		t.Errorf("unexpected product: %+v", created)
	}

	// Дубликат имени
	w = api.do(t, http.MethodPost, "/api/products", adminToken, dto.CreateProductRequest{
		Name:       "Phone",
		Price:      50,
		CategoryID: category.ID,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", w.Code)
	}

	// Чтение с категорией
	w = api.do(t, http.MethodGet, "/api/products/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got dto.ProductResponse
	decodeJSON(t, w, &got)
	if got.Category == nil || got.Category.Name != "Electronics" {
		t.Errorf("expected populated category, got %+v", got.Category)
	}

	// Частичное обновление
	newStock := 10
	w = api.do(t, http.MethodPut, "/api/products/1", adminToken, dto.UpdateProductRequest{
		Stock: &newStock,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated dto.ProductResponse
	decodeJSON(t, w, &updated)
	if updated.Stock != 10 || updated.Name != "Phone" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	// Удаление и скрытие из выдачи
	w = api.do(t, http.MethodDelete, "/api/products/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = api.do(t, http.MethodGet, "/api/products/1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestProductCategoryReassignment(t *testing.T) {
	api := newTestAPI(t)
	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)
	electronics := createTestCategory(t, api, adminToken, "Electronics")
	books := createTestCategory(t, api, adminToken, "Books")

	w := api.do(t, http.MethodPost, "/api/products", adminToken, dto.CreateProductRequest{
		Name:       "Phone",
		Price:      100,
		Stock:      5,
		CategoryID: electronics.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Перенос в другую категорию
	w = api.do(t, http.MethodPut, "/api/products/1", adminToken, dto.UpdateProductRequest{
		CategoryID: &books.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Перенос виден при повторном чтении, а не только в ответе на PUT
	w = api.do(t, http.MethodGet, "/api/products/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got dto.ProductResponse
	decodeJSON(t, w, &got)
	if got.CategoryID != books.ID {
		t.Errorf("expected category_id %d after reassignment, got %d", books.ID, got.CategoryID)
	}
	if got.Category == nil || got.Category.Name != "Books" {
		t.Errorf("expected Books category, got %+v", got.Category)
	}

	// Перенос в несуществующую категорию
	missing := uint(42)
	w = api.do(t, http.MethodPut, "/api/products/1", adminToken, dto.UpdateProductRequest{
		CategoryID: &missing,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing category, got %d", w.Code)
	}
}

func TestProductDiscountValidation(t *testing.T) {
	api := newTestAPI(t)
	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)
	category := createTestCategory(t, api, adminToken, "Electronics")

	// Скидка выше базовой цены
	discount := 150.0
	w := api.do(t, http.MethodPost, "/api/products", adminToken, dto.CreateProductRequest{
		Name:          "Phone",
		Price:         100,
		DiscountPrice: &discount,
		CategoryID:    category.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for discount above price, got %d", w.Code)
	}

	// Неизвестная категория
	w = api.do(t, http.MethodPost, "/api/products", adminToken, dto.CreateProductRequest{
		Name:       "Phone",
		Price:      100,
		CategoryID: 42,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing category, got %d", w.Code)
	}
}

func TestProductListFilters(t *testing.T) {
	api := newTestAPI(t)
	adminToken, _ := api.tokenFor(t, "admin@shop.com", role.Admin)
	electronics := createTestCategory(t, api, adminToken, "Electronics")
	books := createTestCategory(t, api, adminToken, "Books")

	for _, p := range []dto.CreateProductRequest{
		{Name: "Phone", Price: 100, Stock: 5, CategoryID: electronics.ID},
		{Name: "Laptop", Price: 500, Stock: 2, CategoryID: electronics.ID},
		{Name: "Novel", Price: 10, Stock: 20, CategoryID: books.ID},
	} {
		w := api.do(t, http.MethodPost, "/api/products", adminToken, p)
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to seed product %s: %d", p.Name, w.Code)
		}
	}

	// Фильтр по категории
	w := api.do(t, http.MethodGet, "/api/products?category_id=1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list dto.ProductListResponse
	decodeJSON(t, w, &list)
	if list.Total != 2 {
		t.Errorf("expected 2 electronics, got %d", list.Total)
	}

	// Поиск по названию
	w = api.do(t, http.MethodGet, "/api/products?query=nov", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeJSON(t, w, &list)
	if list.Total != 1 || list.Products[0].Name != "Novel" {
		t.Errorf("expected Novel, got %+v", list)
	}

	// Пагинация
	w = api.do(t, http.MethodGet, "/api/products?page=2&limit=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeJSON(t, w, &list)
	if list.Total != 3 || len(list.Products) != 1 {
		t.Errorf("expected 1 of 3 on page 2, got total=%d len=%d", list.Total, len(list.Products))
	}
}

func TestProductWriteRequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	customerToken, _ := api.tokenFor(t, "customer@shop.com", role.Customer)

	w := api.do(t, http.MethodPost, "/api/products", customerToken, dto.CreateProductRequest{
		Name:       "Phone",
		Price:      100,
		CategoryID: 1,
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}

	w = api.do(t, http.MethodDelete, "/api/products/1", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
