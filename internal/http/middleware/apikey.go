// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the pre-shared-key gate that protects the whole API
// surface. Every request must carry the configured secret in the x-api-key
// header; anything else is rejected with 401 before reaching a handler.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderAPIKey is the request header carrying the pre-shared API secret.
const HeaderAPIKey = "x-api-key"

// APIKey returns a Gin middleware that rejects requests whose x-api-key
// header does not match the configured secret.
//
// Behavior:
//   - Comparison is constant-time to avoid leaking prefix matches.
//   - A missing header and a wrong key produce the same 401 envelope, so
//     clients cannot probe which of the two failed.
//   - An empty configured key disables the gate; config validation prevents
//     that in production setups.
//
// The check is a pure transport-boundary concern: no handler or service
// below this middleware is aware of API keys.
func APIKey(key string) gin.HandlerFunc {
	secret := []byte(key)
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}
		got := []byte(c.GetHeader(HeaderAPIKey))
		if subtle.ConstantTimeCompare(got, secret) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "API key is missing or invalid",
			})
			return
		}
		c.Next()
	}
}
