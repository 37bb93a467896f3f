// controllers/order.go
package controllers

import (
	"net/http"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/services"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateOrderInput defines the expected JSON structure for booking an order
type CreateOrderInput struct {
	CustomerID     string              `json:"customerId" binding:"required"`
	Measurements   models.Measurements `json:"measurements"`
	StitchingPrice *decimal.Decimal    `json:"stitchingPrice" binding:"required"`
	AdvancePaid    *decimal.Decimal    `json:"advancePaid"`
}

type UpdateStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type SendMessageInput struct {
	Urdu    string `json:"urdu"`
	English string `json:"english"`
}

type RecordPaymentInput struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type OrderController struct {
	Orders        *services.OrderService
	Notifications repository.NotificationLogStore
	Logger        *zap.Logger
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	advance := decimal.Zero
	if input.AdvancePaid != nil {
		advance = *input.AdvancePaid
	}
	if input.StitchingPrice.IsNegative() || advance.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Stitching price and advance cannot be negative")
		return
	}
	if msg := validateMeasurements(input.Measurements); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	order, err := oc.Orders.Create(c.Request.Context(), services.OrderInput{
		CustomerID:     input.CustomerID,
		Measurements:   input.Measurements,
		StitchingPrice: *input.StitchingPrice,
		AdvancePaid:    advance,
	})
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

func validateMeasurements(m models.Measurements) string {
	switch {
	case !m.SuitType.Valid():
		return "Unknown suit type"
	case m.NumPockets < 0 || m.NumSuits < 0:
		return "Pocket and suit counts cannot be negative"
	case !utils.ValidISODate(m.MeasurementDate) || !utils.ValidISODate(m.DeliveryDate):
		return "Dates must be formatted as YYYY-MM-DD"
	}
	return ""
}

// GetOrders lists orders with customer names, filtered by ?q= when given.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder is open to the tailor and to the customer who owns the order.
func (oc *OrderController) GetOrder(c *gin.Context) {
	view, err := oc.Orders.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to retrieve order")
		return
	}
	if !canSeeCustomer(c, view.CustomerID) {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    view,
		"grid":     view.Measurements.Grid(),
		"metadata": view.Measurements.Metadata(),
	})
}

// GetMyOrders lists the signed-in customer's own orders.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	id, _ := utils.CurrentUser(c)
	orders, err := oc.Orders.ForCustomer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}

	_, role := utils.CurrentUser(c)
	order, err := oc.Orders.UpdateStatus(c.Request.Context(), role, c.Param("id"), input.Status)
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	order, err := oc.Orders.SendMessage(c.Request.Context(), c.Param("id"), input.Urdu, input.English)
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) AddPhoto(c *gin.Context) {
	var input ImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Image is required")
		return
	}

	order, err := oc.Orders.AddPhoto(c.Request.Context(), c.Param("id"), input.Image)
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to add photo")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) RecordPayment(c *gin.Context) {
	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount is required")
		return
	}

	order, err := oc.Orders.RecordPayment(c.Request.Context(), c.Param("id"), *input.Amount)
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetNotifications lists delivery attempts for the order, newest first.
func (oc *OrderController) GetNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, err := oc.Orders.Get(ctx, id); err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to retrieve order")
		return
	}

	logs, err := oc.Notifications.ListNotificationLogs(ctx, id)
	if err != nil {
		respondServiceError(c, oc.Logger, err, "Failed to retrieve notifications")
		return
	}
	if logs == nil {
		logs = []models.NotificationLog{}
	}
	c.JSON(http.StatusOK, logs)
}
