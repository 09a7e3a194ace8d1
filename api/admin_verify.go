package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nyumbani/listing-api/internal/model"
	"nyumbani/listing-api/internal/service"
)

type unverifyBody struct {
	Reason string `json:"reason"`
}

// AdminVerify marks a listing as verified by the calling admin
func (a *API) AdminVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	admin := c.MustGet("authUser").(*model.User)

	property, err := service.VerifyProperty(a.DB, c.Param("id"), admin.ID)
	if err != nil {
		if err == service.ErrPropertyNotFound {
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

		zap.L().Error("Failed to verify property", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property verified successfully",
		"property": property,
	})
}

// AdminUnverify clears the verified mark, recording the admin and an
// optional reason
func (a *API) AdminUnverify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	admin := c.MustGet("authUser").(*model.User)

	var data unverifyBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid request body",
				"requestID": requestID,
			})

			zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	property, err := service.UnverifyProperty(a.DB, c.Param("id"), admin.ID, data.Reason)
	if err != nil {
		if err == service.ErrPropertyNotFound {
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

		zap.L().Error("Failed to unverify property", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property unverified successfully",
		"property": property,
	})
}
