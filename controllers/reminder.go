// controllers/reminder.go
package controllers

import (
	"net/http"

	"digitaltailor-backend/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

// RunReminders triggers the delivery reminder job immediately.
func (rc *ReminderController) RunReminders(c *gin.Context) {
	result := rc.Reminders.SendDeliveryReminders(c.Request.Context())
	c.JSON(http.StatusOK, result)
}
