package controllers

import (
	"net/http"

	"digitaltailor-backend/models"

	"github.com/gin-gonic/gin"
)

func GetSuitTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuitTypes)
}

// GetMeasurementFields returns every order field tagged as grid or metadata.
func GetMeasurementFields(c *gin.Context) {
	c.JSON(http.StatusOK, models.MeasurementFields)
}
