package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"meetbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const callbackTokenHeader = "x-callback-token"

// RequireCallbackToken guards the payment webhook with the shared secret
// agreed with the gateway. No signature scheme is involved, only an exact
// header match.
func RequireCallbackToken(cfg config.WebhookConfig) gin.HandlerFunc {
	expected := []byte(cfg.CallbackToken)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(callbackTokenHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(expected, got) != 1 {
			slog.Warn("webhook rejected: bad callback token", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid callback token",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
