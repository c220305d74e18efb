package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopadmin/internal/app/config"
	"shopadmin/internal/app/ds"
	"shopadmin/internal/app/middleware"
	"shopadmin/internal/app/repository"
	"shopadmin/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testAPI struct {
	router *gin.Engine
	repo   *repository.Repository
	auth   *AuthHandler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	repo, err := repository.NewWithDB(db)
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpiresIn:     time.Hour,
			Issuer:        "shop-admin-api",
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	// Redis и MinIO в тестах не поднимаются
	authHandler := NewAuthHandler(repo, nil, cfg)
	apiHandler := NewAPIHandler(repo, nil, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(nil, cfg)

	router := gin.New()
	apiHandler.RegisterAPIRoutes(router, authMiddleware)

	return &testAPI{
		router: router,
		repo:   repo,
		auth:   authHandler,
	}
}

// tokenFor регистрирует пользователя с ролью и возвращает его JWT
func (api *testAPI) tokenFor(t *testing.T, email string, r role.Role) (string, *ds.User) {
	t.Helper()
	user, err := api.repo.CreateUser("Test User", email, "$2a$10$stubbcrypthashvalue000000000000000000000000000000000", int(r))
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token, err := api.auth.issueToken(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token, user
}

func (api *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestPing(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/ping", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	decodeJSON(t, w, &resp)
	if resp["message"] != "pong" {
		t.Errorf("expected pong, got %q", resp["message"])
	}
}
