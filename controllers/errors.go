package controllers

import (
	"errors"
	"net/http"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/services"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps service and store errors onto HTTP statuses.
// Anything unrecognised is logged and reported as a 500 with fallback.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, repository.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCustomerExists),
		errors.Is(err, repository.ErrDuplicate):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrForbiddenRole):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrEmptyImage):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error(fallback, zap.String("path", c.FullPath()), zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
