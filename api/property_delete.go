package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

func (a *API) PropertyDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	caller := c.MustGet("authUser").(*model.User)

	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No property ID provided",
			"requestID": requestID,
		})
		return
	}

	var property model.Property

	err := a.DB.Where("id = ?", propertyID).First(&property).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Property not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch property", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if property.UserID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You can only delete your own listings",
			"requestID": requestID,
		})
		return
	}

	if err := a.DB.Delete(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete property", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Property deleted successfully",
	})
}
