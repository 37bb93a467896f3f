package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/services"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	ShopName    string `json:"shopName" binding:"required"`
	ShopAddress string `json:"shopAddress"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

type CustomerLoginInput struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

type AuthController struct {
	Users     repository.UserStore
	Customers *services.CustomerService
	Secret    string
	Expiry    time.Duration
	Logger    *zap.Logger
}

// controllers/auth.go
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := ac.Users.CreateUser(c.Request.Context(), models.User{
		Email:            strings.TrimSpace(input.Email),
		Phone:            strings.TrimSpace(input.Phone),
		Name:             input.Name,
		Password:         hash,
		ShopName:         input.ShopName,
		ShopAddress:      input.ShopAddress,
		SMSNotifications: true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
			return
		}
		respondServiceError(c, ac.Logger, err, "Failed to create user")
		return
	}

	token, ok := ac.issueToken(c, user.ID, models.RoleTailor)
	if !ok {
		return
	}

	ac.Logger.Info("Tailor registered", zap.String("user_id", user.ID))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    userResponse(user),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := c.Request.Context()
	user, err := ac.Users.FindUserByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondServiceError(c, ac.Logger, err, "Database error")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, ok := ac.issueToken(c, user.ID, models.RoleTailor)
	if !ok {
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := ac.Users.UpdateUser(ctx, user); err != nil {
		ac.Logger.Warn("Failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

// CustomerLogin signs a customer in with their mobile number alone.
func (ac *AuthController) CustomerLogin(c *gin.Context) {
	var input CustomerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Mobile number is required")
		return
	}

	customer, err := ac.Customers.LoginByMobile(c.Request.Context(), input.MobileNumber)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "No customer found with this mobile number")
			return
		}
		respondServiceError(c, ac.Logger, err, "Failed to sign in")
		return
	}

	token, ok := ac.issueToken(c, customer.ID, models.RoleCustomer)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"role":     models.RoleCustomer,
		"customer": customer,
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	id, role := utils.CurrentUser(c)
	ctx := c.Request.Context()

	if role == models.RoleCustomer {
		customer, err := ac.Customers.Get(ctx, id)
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Customer not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "customer": customer})
		return
	}

	user, err := ac.Users.GetUser(ctx, id)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "user": userResponse(user)})
}

func (ac *AuthController) issueToken(c *gin.Context, subject string, role models.UserRole) (string, bool) {
	token, err := utils.GenerateToken(ac.Secret, ac.Expiry, subject, role)
	if err != nil {
		ac.Logger.Error("Failed to generate token", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return "", false
	}

	c.SetCookie(
		"token",
		token,
		int(ac.Expiry.Seconds()),
		"/",
		"",
		true,
		true,
	)
	return token, true
}

func userResponse(u models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"name":     u.Name,
		"phone":    u.Phone,
		"shopName": u.ShopName,
	}
}
