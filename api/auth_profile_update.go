package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
	"nyumbani/listing-api/validators"
)

type profileUpdateBody struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProfileUpdate changes name/phone/role and, when both password fields
// are supplied, re-hashes the password. A password change requires the
// current password to match
func (a *API) ProfileUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data profileUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Name, phone and role are required",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PhoneValidator(data.Phone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if !model.Role(data.Role).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid role provided",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load user profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var phoneTaken bool

	err = a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("phone = ? AND id != ?", data.Phone, userID).
		Find(&phoneTaken).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check phone uniqueness", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if phoneTaken {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Phone number already in use",
			"requestID": requestID,
		})
		return
	}

	user.Name = data.Name
	user.Phone = data.Phone
	user.Role = model.Role(data.Role)

	if data.NewPassword != "" {
		ok, err := a.Argon.VerifyPasswd(data.CurrentPassword, user.PasswordHash)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to verify current password", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Current password is incorrect",
				"requestID": requestID,
			})
			return
		}

		if err := validators.PasswordValidator(data.NewPassword); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		hash, err := a.Argon.GenerateFromPassword(data.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to hash new password", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user.PasswordHash = hash
	}

	if err := a.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update user profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user.Summary(),
	})
}
