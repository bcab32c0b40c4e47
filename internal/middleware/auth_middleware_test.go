package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/engagecrm/engage-backend/internal/config"
	"github.com/engagecrm/engage-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":    c.GetString("userID"),
			"userEmail": c.GetString("userEmail"),
		})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	r := newProtectedRouter(t, cfg)

	token, err := jwt.Generate("test-secret", "user-1", "asha@example.com", 3600)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestJWTAuthMiddlewareRejectsForeignSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	r := newProtectedRouter(t, cfg)

	token, err := jwt.Generate("other-secret", "user-1", "asha@example.com", 3600)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
