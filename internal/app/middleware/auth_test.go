package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopadmin/internal/app/config"
	"shopadmin/internal/app/ds"
	"shopadmin/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        testSecret,
			ExpiresIn:     time.Hour,
			Issuer:        "shop-admin-api",
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
}

func signToken(t *testing.T, secret string, userID uint, r role.Role, expiresAt int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt,
			IssuedAt:  time.Now().Unix(),
			Issuer:    "shop-admin-api",
		},
		UserID: userID,
		Role:   r,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestRouter(requiredRoles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(nil, testConfig())

	r := gin.New()
	r.GET("/protected", am.WithAuthCheck(requiredRoles...), func(c *gin.Context) {
		userID := c.GetUint("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name     string
		roles    []role.Role
		header   string
		wantCode int
	}{
		{
			name:     "no header",
			roles:    []role.Role{role.Admin},
			header:   "",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			roles:    []role.Role{role.Admin},
			header:   "Bearer not-a-jwt",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong signature",
			roles:    []role.Role{role.Admin},
			header:   "Bearer " + signToken(t, "other-secret", 1, role.Admin, future),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			roles:    []role.Role{role.Admin},
			header:   "Bearer " + signToken(t, testSecret, 1, role.Admin, past),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "insufficient role",
			roles:    []role.Role{role.Admin},
			header:   "Bearer " + signToken(t, testSecret, 1, role.Customer, future),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "matching role",
			roles:    []role.Role{role.Admin},
			header:   "Bearer " + signToken(t, testSecret, 1, role.Admin, future),
			wantCode: http.StatusOK,
		},
		{
			name:     "any of several roles",
			roles:    []role.Role{role.Manager, role.Admin},
			header:   "Bearer " + signToken(t, testSecret, 1, role.Manager, future),
			wantCode: http.StatusOK,
		},
		{
			name:     "no role restriction",
			roles:    nil,
			header:   "Bearer " + signToken(t, testSecret, 1, role.Customer, future),
			wantCode: http.StatusOK,
		},
		{
			name:     "token without bearer prefix",
			roles:    []role.Role{role.Admin},
			header:   signToken(t, testSecret, 1, role.Admin, future),
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.roles...)
			w := doRequest(r, tt.header)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
