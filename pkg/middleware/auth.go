package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const APIKeyHeader = "X-Api-Key"

// APIKeyMiddleware admits callers presenting apiKey in the X-Api-Key header.
// An empty apiKey disables the check.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		got := c.GetHeader(APIKeyHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			logrus.WithField("client_ip", c.ClientIP()).Warn("APIKeyMiddleware: rejected caller")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "valid '" + APIKeyHeader + "' header is required"})
			return
		}
		c.Next()
	}
}
