package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/middleware"
)

// InquiryController handles contact inquiry endpoints. Creation is public,
// everything else is admin only.
type InquiryController struct {
	inquiryService *services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService *services.InquiryService) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

// CreateInquiry records a public contact form submission
// @Summary Submit an inquiry
// @Description Records a contact form submission from the public site
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry information"
// @Success 201 {object} dto.APIResponse{data=models.Inquiry} "Inquiry recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid inquiry data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	inquiry, err := c.inquiryService.CreateInquiry(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      inquiry,
		Timestamp: time.Now(),
	})
}

// ListInquiries retrieves a page of inquiries
// @Summary List inquiries
// @Description Retrieves inquiries newest first, optionally filtered by status
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(new, contacted, closed)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.InquiryListResponse} "Inquiries retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [get]
func (c *InquiryController) ListInquiries(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	list, err := c.inquiryService.ListInquiries(ctx, ctx.Query("status"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// UpdateInquiryStatus moves an inquiry between handling states
// @Summary Update inquiry status
// @Description Moves an inquiry between new, contacted and closed
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param request body dto.UpdateInquiryStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Inquiry} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid state transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id}/status [put]
func (c *InquiryController) UpdateInquiryStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInquiryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	inquiry, err := c.inquiryService.UpdateInquiryStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      inquiry,
		Timestamp: time.Now(),
	})
}

// DeleteInquiry deletes an inquiry
// @Summary Delete an inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 204 "Inquiry deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [delete]
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.inquiryService.DeleteInquiry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
