package controllers

import (
	"net/http"
	"strings"

	"digitaltailor-backend/models"
	"digitaltailor-backend/services"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateCustomerInput defines the expected JSON structure for registering a customer
type CreateCustomerInput struct {
	Name         string `json:"name" binding:"required"`
	FatherName   string `json:"fatherName" binding:"required"`
	Address      string `json:"address" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	CNIC         string `json:"cnic"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name         *string `json:"name" binding:"omitempty,min=1"`
	FatherName   *string `json:"fatherName" binding:"omitempty,min=1"`
	Address      *string `json:"address" binding:"omitempty,min=1"`
	MobileNumber *string `json:"mobileNumber" binding:"omitempty,min=1"`
	CNIC         *string `json:"cnic"`
}

type ImageInput struct {
	Image string `json:"image" binding:"required"`
}

type CustomerController struct {
	Customers *services.CustomerService
	Logger    *zap.Logger
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !filled(input.Name, input.FatherName, input.Address, input.MobileNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, errBlankCustomerField)
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.MobileNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer, err := cc.Customers.Register(c.Request.Context(), services.CustomerInput{
		Name:         input.Name,
		FatherName:   input.FatherName,
		Address:      input.Address,
		MobileNumber: input.MobileNumber,
		CNIC:         input.CNIC,
	})
	if err != nil {
		respondServiceError(c, cc.Logger, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers, filtered by ?q= when given.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, cc.Logger, err, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer is open to the tailor and to the customer themself.
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id := c.Param("id")
	if !canSeeCustomer(c, id) {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this customer")
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, cc.Logger, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	current, err := cc.Customers.Get(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, cc.Logger, err, "Failed to retrieve customer")
		return
	}

	update := services.CustomerInput{
		Name:         current.Name,
		FatherName:   current.FatherName,
		Address:      current.Address,
		MobileNumber: current.MobileNumber,
		CNIC:         current.CNIC,
	}
	if input.Name != nil {
		update.Name = *input.Name
	}
	if input.FatherName != nil {
		update.FatherName = *input.FatherName
	}
	if input.Address != nil {
		update.Address = *input.Address
	}
	if input.MobileNumber != nil {
		if !utils.ValidatePhone(*input.MobileNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		update.MobileNumber = *input.MobileNumber
	}
	if input.CNIC != nil {
		update.CNIC = *input.CNIC
	}
	if !filled(update.Name, update.FatherName, update.Address, update.MobileNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, errBlankCustomerField)
		return
	}

	customer, err := cc.Customers.Update(ctx, current.ID, update)
	if err != nil {
		respondServiceError(c, cc.Logger, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// SetProfilePicture replaces the customer's single picture slot.
func (cc *CustomerController) SetProfilePicture(c *gin.Context) {
	var input ImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Image is required")
		return
	}

	customer, err := cc.Customers.SetProfilePicture(c.Request.Context(), c.Param("id"), input.Image)
	if err != nil {
		respondServiceError(c, cc.Logger, err, "Failed to update profile picture")
		return
	}
	c.JSON(http.StatusOK, customer)
}

const errBlankCustomerField = "Name, father name, address and mobile number cannot be blank"

// filled reports whether every value has non-space text.
func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func canSeeCustomer(c *gin.Context, customerID string) bool {
	id, role := utils.CurrentUser(c)
	return role == models.RoleTailor || (role == models.RoleCustomer && id == customerID)
}
