package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

// NewAdminOnlyMiddleware composes after the auth middleware and re-checks
// the caller's role against the database instead of trusting the token's
// role claim. A user may have been demoted or deleted since their token
// was issued
func NewAdminOnlyMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)
		userID := c.MustGet("userID").(string)

		var user model.User

		err := d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid token. User not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to load user for admin check", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Access forbidden. Admin privileges required",
				"requestID": requestID,
			})
			return
		}

		c.Set("authUser", &user)
		c.Next()
	}
}
