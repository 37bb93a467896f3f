// controllers/template.go
package controllers

import (
	"net/http"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateTemplateInput defines the expected JSON structure
type CreateTemplateInput struct {
	Key     string `json:"key" binding:"required"`
	Urdu    string `json:"urdu" binding:"required"`
	English string `json:"english" binding:"required"`
}

// UpdateTemplateInput defines the expected JSON structure
type UpdateTemplateInput struct {
	Urdu     *string `json:"urdu"`
	English  *string `json:"english"`
	IsActive *bool   `json:"isActive"`
}

type TemplateController struct {
	Templates repository.TemplateStore
	Logger    *zap.Logger
}

func (tc *TemplateController) CreateTemplate(c *gin.Context) {
	var input CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	template, err := tc.Templates.CreateTemplate(c.Request.Context(), models.MessageTemplate{
		Key:      input.Key,
		Urdu:     input.Urdu,
		English:  input.English,
		IsActive: true,
	})
	if err != nil {
		respondServiceError(c, tc.Logger, err, "Failed to create template")
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (tc *TemplateController) GetTemplates(c *gin.Context) {
	templates, err := tc.Templates.ListTemplates(c.Request.Context())
	if err != nil {
		respondServiceError(c, tc.Logger, err, "Failed to retrieve templates")
		return
	}
	if templates == nil {
		templates = []models.MessageTemplate{}
	}
	c.JSON(http.StatusOK, templates)
}

func (tc *TemplateController) GetTemplate(c *gin.Context) {
	template, err := tc.Templates.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, tc.Logger, err, "Failed to retrieve template")
		return
	}
	c.JSON(http.StatusOK, template)
}

func (tc *TemplateController) UpdateTemplate(c *gin.Context) {
	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	template, err := tc.Templates.GetTemplate(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, tc.Logger, err, "Failed to retrieve template")
		return
	}

	if input.Urdu != nil {
		template.Urdu = *input.Urdu
	}
	if input.English != nil {
		template.English = *input.English
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := tc.Templates.UpdateTemplate(ctx, template); err != nil {
		respondServiceError(c, tc.Logger, err, "Failed to update template")
		return
	}
	c.JSON(http.StatusOK, template)
}

func (tc *TemplateController) DeleteTemplate(c *gin.Context) {
	if err := tc.Templates.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, tc.Logger, err, "Failed to delete template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}
