package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

// PropertyUpdate replaces the core fields of a listing the caller owns.
// Verification fields are never touched here, only admins move those
func (a *API) PropertyUpdate(c *gin.Context) {
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

	var data propertyBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := data.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
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
			"error":     "You can only update your own listings",
			"requestID": requestID,
		})
		return
	}

	property.Title = data.Title
	property.Location = data.Location
	property.Description = data.Description
	property.Type = data.Type
	property.PricingMode = data.PricingMode
	property.Price = data.Price
	property.PriceMin = data.PriceMin
	property.PriceMax = data.PriceMax
	property.Bedrooms = data.Bedrooms
	property.Bathrooms = data.Bathrooms
	property.Images = model.StringSlice(data.Images)
	property.Amenities = model.StringSlice(data.Amenities)

	if err := a.DB.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update property", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, property)
}
