package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/middleware"
)

// ContentController handles team member, testimonial and service card
// endpoints. They share the same thin CRUD shape.
type ContentController struct {
	teamService        *services.TeamService
	testimonialService *services.TestimonialService
	serviceService     *services.ServiceService
}

// NewContentController creates a new ContentController
func NewContentController(
	teamService *services.TeamService,
	testimonialService *services.TestimonialService,
	serviceService *services.ServiceService,
) *ContentController {
	return &ContentController{
		teamService:        teamService,
		testimonialService: testimonialService,
		serviceService:     serviceService,
	}
}

// CreateTeamMember creates a new team member
// @Summary Create a team member
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveTeamMemberRequest true "Team member information"
// @Success 201 {object} dto.APIResponse{data=models.TeamMember} "Team member created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /team [post]
func (c *ContentController) CreateTeamMember(ctx *gin.Context) {
	var req dto.SaveTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid team member data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.teamService.CreateTeamMember(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: member, Timestamp: time.Now()})
}

// GetAllTeamMembers lists team members
// @Summary Get all team members
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.TeamMember} "Team members retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /team [get]
func (c *ContentController) GetAllTeamMembers(ctx *gin.Context) {
	members, err := c.teamService.GetAllTeamMembers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: members, Timestamp: time.Now()})
}

// UpdateTeamMember updates a team member
// @Summary Update a team member
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Param request body dto.SaveTeamMemberRequest true "Updated team member information"
// @Success 200 {object} dto.APIResponse{data=models.TeamMember} "Team member updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /team/{id} [put]
func (c *ContentController) UpdateTeamMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SaveTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid team member data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.teamService.UpdateTeamMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: member, Timestamp: time.Now()})
}

// DeleteTeamMember deletes a team member
// @Summary Delete a team member
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 204 "Team member deleted"
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /team/{id} [delete]
func (c *ContentController) DeleteTeamMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teamService.DeleteTeamMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateTestimonial creates a new testimonial
// @Summary Create a testimonial
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveTestimonialRequest true "Testimonial information"
// @Success 201 {object} dto.APIResponse{data=models.Testimonial} "Testimonial created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /testimonials [post]
func (c *ContentController) CreateTestimonial(ctx *gin.Context) {
	var req dto.SaveTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid testimonial data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	t, err := c.testimonialService.CreateTestimonial(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: t, Timestamp: time.Now()})
}

// GetAllTestimonials lists testimonials
// @Summary Get all testimonials
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Testimonial} "Testimonials retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /testimonials [get]
func (c *ContentController) GetAllTestimonials(ctx *gin.Context) {
	testimonials, err := c.testimonialService.GetAllTestimonials(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: testimonials, Timestamp: time.Now()})
}

// UpdateTestimonial updates a testimonial
// @Summary Update a testimonial
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param request body dto.SaveTestimonialRequest true "Updated testimonial information"
// @Success 200 {object} dto.APIResponse{data=models.Testimonial} "Testimonial updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Router /testimonials/{id} [put]
func (c *ContentController) UpdateTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SaveTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid testimonial data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	t, err := c.testimonialService.UpdateTestimonial(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: t, Timestamp: time.Now()})
}

// DeleteTestimonial deletes a testimonial
// @Summary Delete a testimonial
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 204 "Testimonial deleted"
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Router /testimonials/{id} [delete]
func (c *ContentController) DeleteTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.testimonialService.DeleteTestimonial(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateService creates a new service card
// @Summary Create a service card
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveServiceRequest true "Service information"
// @Success 201 {object} dto.APIResponse{data=models.Service} "Service created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /services [post]
func (c *ContentController) CreateService(ctx *gin.Context) {
	var req dto.SaveServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid service data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	card, err := c.serviceService.CreateService(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: card, Timestamp: time.Now()})
}

// GetAllServices lists service cards
// @Summary Get all service cards
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Service} "Services retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /services [get]
func (c *ContentController) GetAllServices(ctx *gin.Context) {
	cards, err := c.serviceService.GetAllServices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: cards, Timestamp: time.Now()})
}

// UpdateService updates a service card
// @Summary Update a service card
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body dto.SaveServiceRequest true "Updated service information"
// @Success 200 {object} dto.APIResponse{data=models.Service} "Service updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Router /services/{id} [put]
func (c *ContentController) UpdateService(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SaveServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid service data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	card, err := c.serviceService.UpdateService(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: card, Timestamp: time.Now()})
}

// DeleteService deletes a service card
// @Summary Delete a service card
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 204 "Service deleted"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Router /services/{id} [delete]
func (c *ContentController) DeleteService(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.serviceService.DeleteService(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
