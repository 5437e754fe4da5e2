package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/middleware"
)

// UniversityController handles partner university endpoints
type UniversityController struct {
	universityService *services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService *services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// CreateUniversity creates a new university page
// @Summary Create a university
// @Description Creates a new partner university page
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveUniversityRequest true "University information"
// @Success 201 {object} dto.APIResponse{data=models.University} "University created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Short code already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.SaveUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	u, err := c.universityService.CreateUniversity(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      u,
		Timestamp: time.Now(),
	})
}

// GetAllUniversities retrieves universities
// @Summary Get all universities
// @Description Retrieves universities in display order; active=true excludes hidden pages
// @Tags universities
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active pages"
// @Success 200 {object} dto.APIResponse{data=dto.UniversityListResponse} "Universities retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [get]
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"

	universities, err := c.universityService.GetAllUniversities(ctx, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.UniversityListResponse{Universities: universities},
		Timestamp: time.Now(),
	})
}

// GetUniversityByID retrieves a university by ID
// @Summary Get university by ID
// @Description Retrieves a university page with its course offerings
// @Tags universities
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=models.University} "University retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [get]
func (c *UniversityController) GetUniversityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	u, err := c.universityService.GetUniversityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      u,
		Timestamp: time.Now(),
	})
}

// UpdateUniversity updates an existing university page
// @Summary Update a university
// @Description Updates a university page; course offerings are managed through the editor
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID"
// @Param request body dto.SaveUniversityRequest true "Updated university information"
// @Success 200 {object} dto.APIResponse{data=models.University} "University updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 409 {object} dto.ErrorResponse "Short code already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SaveUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	u, err := c.universityService.UpdateUniversity(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      u,
		Timestamp: time.Now(),
	})
}

// DeleteUniversity deletes a university page
// @Summary Delete a university
// @Description Deletes a partner university page
// @Tags universities
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID"
// @Success 204 "University deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.universityService.DeleteUniversity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
