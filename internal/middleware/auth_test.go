package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"scholarhub/internal/domain"
	"scholarhub/internal/pkg/jwt"
)

type stubUserLoader struct {
	user *domain.User
	err  error
}

func (s *stubUserLoader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.user, s.err
}

func testCodec() *jwt.Codec {
	return jwt.NewCodec("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestAuth_ValidToken(t *testing.T) {
	codec := testCodec()
	token, _ := codec.IssueAccess(42, "APPLICANT")

	router := gin.New()
	router.Use(Auth(codec, nil))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "APPLICANT")
}

func TestAuth_NoHeader(t *testing.T) {
	router := gin.New()
	router.Use(Auth(testCodec(), nil))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_HEADER_MISSING")
}

func TestAuth_BadFormat(t *testing.T) {
	router := gin.New()
	router.Use(Auth(testCodec(), nil))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	for _, header := range []string{"Basic abc", "Bearer", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT", header)
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	codec := testCodec()
	// a refresh token must not open the gate
	refresh, _ := codec.IssueRefresh(42, "APPLICANT")

	router := gin.New()
	router.Use(Auth(codec, nil))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := jwt.NewCodec("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)
	token, _ := expired.IssueAccess(42, "APPLICANT")

	router := gin.New()
	router.Use(Auth(testCodec(), nil))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuth_DisabledAccount(t *testing.T) {
	codec := testCodec()
	token, _ := codec.IssueAccess(42, "APPLICANT")
	loader := &stubUserLoader{user: &domain.User{ID: 42, IsActive: false}}

	router := gin.New()
	router.Use(Auth(codec, loader))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ACCOUNT_DISABLED")
}

func TestPermit(t *testing.T) {
	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		c.Set("role", "APPLICANT")
	}, Permit("ADMIN", "SUPER_ADMIN"), func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})
	router.GET("/admin-ok", func(c *gin.Context) {
		c.Set("role", "ADMIN")
	}, Permit("ADMIN", "SUPER_ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin-ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
