// controllers/report.go
package controllers

import (
	"net/http"

	"digitaltailor-backend/services"

	"github.com/gin-gonic/gin"
)

// GetReportAnalytics returns booking totals with growth against the
// previous month, quarter and year, plus the top customers.
func (dc *DashboardController) GetReportAnalytics(c *gin.Context) {
	customers, orders, err := dc.Orders.Directory(c.Request.Context())
	if err != nil {
		respondServiceError(c, dc.Logger, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, services.BuildReport(customers, orders, dc.now()))
}
