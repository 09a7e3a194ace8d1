package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"nyumbani/listing-api/internal/model"
)

type propertyBody struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	PricingMode string   `json:"pricing_mode"`
	Price       *float64 `json:"price"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
}

func (p *propertyBody) validate() error {
	if p.Title == "" || p.Location == "" {
		return errors.New("title and location are required")
	}

	if !model.ValidPropertyType(p.Type) {
		return errors.New("invalid property type provided")
	}

	if p.PricingMode == "" {
		p.PricingMode = model.PricingFixed
	}

	switch p.PricingMode {
	case model.PricingFixed:
		if p.Price == nil || *p.Price <= 0 {
			return errors.New("price is required for fixed pricing")
		}
		p.PriceMin = nil
		p.PriceMax = nil
	case model.PricingRange:
		if p.PriceMin == nil || p.PriceMax == nil || *p.PriceMin <= 0 || *p.PriceMax < *p.PriceMin {
			return errors.New("a valid price range is required for range pricing")
		}
		p.Price = nil
	default:
		return errors.New("invalid pricing mode provided")
	}

	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return errors.New("bedrooms and bathrooms can't be negative")
	}

	return nil
}

// PropertyCreate inserts a new listing owned by the caller. New listings
// always start out unverified
func (a *API) PropertyCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	owner := c.MustGet("authUser").(*model.User)

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

	propertyID, err := gonanoid.Generate(charset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate property ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	property := model.Property{
		ID:          propertyID,
		UserID:      owner.ID,
		Title:       data.Title,
		Location:    data.Location,
		Description: data.Description,
		Type:        data.Type,
		PricingMode: data.PricingMode,
		Price:       data.Price,
		PriceMin:    data.PriceMin,
		PriceMax:    data.PriceMax,
		Bedrooms:    data.Bedrooms,
		Bathrooms:   data.Bathrooms,
		Images:      model.StringSlice(data.Images),
		Amenities:   model.StringSlice(data.Amenities),
	}

	if err := a.DB.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create property", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, property)
}
