package controllers

import (
	"net/http"

	"digitaltailor-backend/repository"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateProfileInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	ShopName    *string `json:"shopName" binding:"omitempty,min=1"`
	ShopAddress *string `json:"shopAddress"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

type NotificationSettingsInput struct {
	SMSNotifications      *bool `json:"smsNotifications"`
	WhatsAppNotifications *bool `json:"whatsAppNotifications"`
	EmailDigest           *bool `json:"emailDigest"`
}

type ProfileController struct {
	Users  repository.UserStore
	Logger *zap.Logger
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, _ := utils.CurrentUser(c)
	user, err := pc.Users.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                  user.Name,
		"shopName":              user.ShopName,
		"shopAddress":           user.ShopAddress,
		"phone":                 user.Phone,
		"email":                 user.Email,
		"smsNotifications":      user.SMSNotifications,
		"whatsAppNotifications": user.WhatsAppNotifications,
		"emailDigest":           user.EmailDigest,
	})
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := c.Request.Context()
	userID, _ := utils.CurrentUser(c)
	user, err := pc.Users.GetUser(ctx, userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.ShopName != nil {
		user.ShopName = *input.ShopName
	}
	if input.ShopAddress != nil {
		user.ShopAddress = *input.ShopAddress
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		user.Phone = *input.Phone
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	if err := pc.Users.UpdateUser(ctx, user); err != nil {
		respondServiceError(c, pc.Logger, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (pc *ProfileController) UpdateNotificationSettings(c *gin.Context) {
	var input NotificationSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := c.Request.Context()
	userID, _ := utils.CurrentUser(c)
	user, err := pc.Users.GetUser(ctx, userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.SMSNotifications != nil {
		user.SMSNotifications = *input.SMSNotifications
	}
	if input.WhatsAppNotifications != nil {
		user.WhatsAppNotifications = *input.WhatsAppNotifications
	}
	if input.EmailDigest != nil {
		user.EmailDigest = *input.EmailDigest
	}

	if err := pc.Users.UpdateUser(ctx, user); err != nil {
		respondServiceError(c, pc.Logger, err, "Failed to update notification settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
