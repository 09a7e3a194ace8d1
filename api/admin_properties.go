package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nyumbani/listing-api/internal/model"
)

// AdminProperties returns every listing for moderation review,
// including unverified ones, with the owning user embedded
func (a *API) AdminProperties(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var properties []model.Property

	err := a.DB.Preload("Owner").
		Order("created_at desc").
		Find(&properties).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list properties for review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, properties)
}
