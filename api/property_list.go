package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nyumbani/listing-api/internal/model"
)

// PropertyList returns every listing, newest first. Verification status
// is advisory metadata for consumers, not a read gate, so unverified
// listings are included
func (a *API) PropertyList(c *gin.Context) {
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

		zap.L().Error("Failed to list properties", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, properties)
}
