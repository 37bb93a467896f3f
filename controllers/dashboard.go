package controllers

import (
	"net/http"
	"time"

	"digitaltailor-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	Orders *services.OrderService
	Logger *zap.Logger
	Now    func() time.Time
}

func (dc *DashboardController) now() time.Time {
	if dc.Now != nil {
		return dc.Now()
	}
	return time.Now()
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	customers, orders, err := dc.Orders.Directory(c.Request.Context())
	if err != nil {
		respondServiceError(c, dc.Logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, services.BuildDashboard(customers, orders, dc.now()))
}
