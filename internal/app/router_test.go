package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"slopewatch.io/slopewatch/internal/api/middleware"
)

func TestCORSConfig_WildcardAllowsAllOrigins(t *testing.T) {
	got := corsConfig([]string{"*", "https://dashboard.example.com"})
	if !got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want true", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 0 {
		t.Fatalf("AllowOrigins = %#v, want empty", got.AllowOrigins)
	}
}

func TestCORSConfig_ExplicitAllowlist(t *testing.T) {
	got := corsConfig([]string{"https://dashboard.example.com"})
	if got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want false", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://dashboard.example.com" {
		t.Fatalf("AllowOrigins = %#v, want the configured origin", got.AllowOrigins)
	}
	found := false
	for _, h := range got.AllowHeaders {
		if h == "Authorization" {
			found = true
		}
	}
	if !found {
		t.Fatalf("AllowHeaders = %#v, want Authorization included", got.AllowHeaders)
	}
}

func TestJWTSkipPublic_PublicPrefixBypassesAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(jwtSkipPublic([]byte("test-signing-key-test-signing-key")))
	router.GET("/api/v1/health/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/notifications", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("public route status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("protected route without token status = %d, want 401", w.Code)
	}
}

func TestJWTSkipPublic_ValidTokenPassesProtectedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	key := []byte("test-signing-key-test-signing-key")
	cfg := middleware.JWTConfig{SigningKey: key, Issuer: "slopewatch", ExpiresIn: time.Hour}
	token, _, err := middleware.GenerateToken(cfg, "user-1", "arjun", "resident")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := gin.New()
	router.Use(jwtSkipPublic(key))
	router.GET("/api/v1/notifications", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("protected route with token status = %d, want 200", w.Code)
	}
}
