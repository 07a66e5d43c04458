package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholarhub/internal/kvstore"
	"scholarhub/internal/pkg/response"
)

// LimitByIP throttles a route per client IP using an INCR+EXPIRE
// counter. Fails open: a broken counter store must not take the login
// route down with it.
func LimitByIP(kv kvstore.Store, route string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate:" + route + ":" + c.ClientIP()
		n, err := kv.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("ratelimit: counter error for %s: %v", key, err)
			c.Next()
			return
		}
		if n > int64(max) {
			response.AbortError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many attempts, try later")
			return
		}
		c.Next()
	}
}

// LimitByRecipient throttles sends per recipient address or phone. The
// recipient comes from the JSON body's "email" or "to" field, so the
// body is re-readable for the handler via ShouldBindBodyWithJSON.
func LimitByRecipient(kv kvstore.Store, max int, window time.Duration) gin.HandlerFunc {
	type recipientBody struct {
		Email string `json:"email"`
		To    string `json:"to"`
	}

	return func(c *gin.Context) {
		var body recipientBody
		if err := c.ShouldBindBodyWithJSON(&body); err != nil {
			// let the handler produce its own validation error
			c.Next()
			return
		}
		to := body.Email
		if to == "" {
			to = body.To
		}
		if to == "" {
			c.Next()
			return
		}

		key := "rate:recipient:" + to
		n, err := kv.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("ratelimit: counter error for %s: %v", key, err)
			c.Next()
			return
		}
		if n > int64(max) {
			response.AbortError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests for this recipient, try later")
			return
		}
		c.Next()
	}
}
