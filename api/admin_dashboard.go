package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nyumbani/listing-api/internal/model"
)

type roleCount struct {
	Role  model.Role `json:"role"`
	Count int64      `json:"count"`
}

// AdminDashboard aggregates the moderation statistics shown on the
// admin landing page
func (a *API) AdminDashboard(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	fail := func(err error, msg string) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error(msg, zap.Error(err), zap.String("requestID", requestID))
	}

	var totalUsers, totalProperties, verifiedProperties int64

	if err := a.DB.Model(model.User{}).Count(&totalUsers).Error; err != nil {
		fail(err, "Failed to count users")
		return
	}

	if err := a.DB.Model(model.Property{}).Count(&totalProperties).Error; err != nil {
		fail(err, "Failed to count properties")
		return
	}

	if err := a.DB.Model(model.Property{}).
		Where("verified = ?", true).
		Count(&verifiedProperties).
		Error; err != nil {
		fail(err, "Failed to count verified properties")
		return
	}

	var usersByRole []roleCount

	if err := a.DB.Model(model.User{}).
		Select("role, count(*) as count").
		Group("role").
		Find(&usersByRole).
		Error; err != nil {
		fail(err, "Failed to group users by role")
		return
	}

	var recentProperties []model.Property

	if err := a.DB.Preload("Owner").
		Order("created_at desc").
		Limit(5).
		Find(&recentProperties).
		Error; err != nil {
		fail(err, "Failed to load recent properties")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statistics": gin.H{
			"totalUsers":         totalUsers,
			"totalProperties":    totalProperties,
			"verifiedProperties": verifiedProperties,
			"pendingProperties":  totalProperties - verifiedProperties,
			"usersByRole":        usersByRole,
		},
		"recentProperties": recentProperties,
	})
}
