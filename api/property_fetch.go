package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

func (a *API) PropertyFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No property ID provided",
			"requestID": requestID,
		})
		return
	}

	var property model.Property

	err := a.DB.Preload("Owner").
		Where("id = ?", propertyID).
		First(&property).
		Error
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

	c.JSON(http.StatusOK, property)
}
