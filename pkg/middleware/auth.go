// Package middleware contains any custom middleware used in the app
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nyumbani/listing-api/pkg/security"
)

// NewAuthMiddleware returns the authenticated guard. It requires a valid
// bearer token and attaches the normalized identity to the context as
// userID and userRole. It does not touch the database; guards that need
// live user data compose on top of it
func NewAuthMiddleware(tokens *security.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No token provided",
				"requestID": requestID,
			})
			return
		}

		ident, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			status := "token_invalid"
			if err == security.ErrTokenExpired {
				status = "token_expired"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     status,
				"requestID": requestID,
			})

			zap.L().Debug("Rejected bearer token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", ident.UserID)
		c.Set("userRole", string(ident.Role))
		c.Next()
	}
}
