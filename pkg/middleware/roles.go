package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

// NewManagerOnlyMiddleware restricts listing mutations to the roles that
// may own listings (Landlord, Developer, Agent). Like the admin guard it
// reloads the user so the decision is based on live data, and leaves the
// record on the context so handlers can autofill contact fields from it
func NewManagerOnlyMiddleware(d *gorm.DB) gin.HandlerFunc {
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

			zap.L().Error("Failed to load user for role check", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !user.Role.CanManageListings() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     fmt.Sprintf("Only Landlords, Developers and Agents can manage listings. Your role: %s", user.Role),
				"requestID": requestID,
			})
			return
		}

		c.Set("authUser", &user)
		c.Next()
	}
}
