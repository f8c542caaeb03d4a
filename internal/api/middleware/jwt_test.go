package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "slopewatch",
		ExpiresIn:  time.Hour,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken(cfg, "u-1", "arjun", "officer")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ParseToken(cfg.SigningKey, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "arjun", claims.Username)
	assert.Equal(t, "officer", claims.Role)
	assert.Equal(t, "slopewatch", claims.Issuer)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpiresIn = -time.Minute

	token, _, err := GenerateToken(cfg, "u-1", "arjun", "resident")
	require.NoError(t, err)

	_, err = ParseToken(cfg.SigningKey, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_RejectsWrongKey(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(cfg, "u-1", "arjun", "resident")
	require.NoError(t, err)

	_, err = ParseToken([]byte("another-signing-key-0987654321098765"), token)
	require.Error(t, err)
}

func newAuthTestRouter(signingKey []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(signingKey))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c.Request.Context()),
			"role":    GetRole(c.Request.Context()),
		})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := GenerateToken(cfg, "u-9", "pema", "admin")
	require.NoError(t, err)

	r := newAuthTestRouter(cfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-9"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := newAuthTestRouter(testJWTConfig().SigningKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r := newAuthTestRouter(testJWTConfig().SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
