package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	jwtsvc "mediavault/internal/pkg/jwt"
)

func newProtectedRouter(jwt *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(jwt))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject": c.GetString("subject"),
			"role":    c.GetString("role"),
		})
	})
	return router
}

func TestJWTAuth_ValidHeader(t *testing.T) {
	jwt := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwt.GenerateToken("alice", "user")
	router := newProtectedRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "user")
}

func TestJWTAuth_QueryTokenFallback(t *testing.T) {
	jwt := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwt.GenerateToken("alice", "user")
	router := newProtectedRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestJWTAuth_MissingToken(t *testing.T) {
	jwt := jwtsvc.New("secret", time.Hour)
	router := newProtectedRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	jwt := jwtsvc.New("secret", time.Hour)
	router := newProtectedRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

// Missing header and bad token must be indistinguishable in the body.
func TestJWTAuth_UniformFailure(t *testing.T) {
	jwt := jwtsvc.New("secret", time.Hour)
	router := newProtectedRouter(jwt)

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest("GET", "/protected", nil))

	expired := httptest.NewRecorder()
	expiredSvc := jwtsvc.New("secret", -time.Minute)
	token, _ := expiredSvc.GenerateToken("alice", "user")
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(expired, req)

	assert.Equal(t, missing.Body.String(), expired.Body.String())
}
