package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"scholarhub/internal/kvstore"
)

func TestLimitByIP(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	router := gin.New()
	router.POST("/login", LimitByIP(kv, "login", 3, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")

	// the counter window restarts after expiry
	kv.Advance(2 * time.Minute)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLimitByRecipient(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	router := gin.New()
	router.POST("/send", LimitByRecipient(kv, 2, time.Hour), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/send", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send(`{"email":"ann@x.com"}`).Code)
	assert.Equal(t, http.StatusOK, send(`{"email":"ann@x.com"}`).Code)

	w := send(`{"email":"ann@x.com"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")

	// a different recipient has its own counter
	assert.Equal(t, http.StatusOK, send(`{"to":"+1555"}`).Code)
}

func TestLimitByRecipient_FailsOpenOnBadBody(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	router := gin.New()
	router.POST("/send", LimitByRecipient(kv, 1, time.Hour), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/send", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
