package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/middleware"
)

// EditorController handles course selection editor session endpoints
type EditorController struct {
	editorService *services.EditorService
}

// NewEditorController creates a new EditorController
func NewEditorController(editorService *services.EditorService) *EditorController {
	return &EditorController{
		editorService: editorService,
	}
}

// OpenForUniversity starts an editor session seeded from a university page
// @Summary Open an editor session for a university
// @Description Starts a course selection session seeded from the stored course offerings
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID"
// @Success 201 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Session opened"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id}/editor [post]
func (c *EditorController) OpenForUniversity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.editorService.Open(ctx, &id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// Open starts an empty editor session for a new university page
// @Summary Open an empty editor session
// @Description Starts a course selection session with nothing selected
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Session opened"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor [post]
func (c *EditorController) Open(ctx *gin.Context) {
	session, err := c.editorService.Open(ctx, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// GetSession renders the current session state
// @Summary Get an editor session
// @Description Retrieves the current state of a course selection session
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Session state"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor/{sid} [get]
func (c *EditorController) GetSession(ctx *gin.Context) {
	session, err := c.editorService.Get(ctx.Param("sid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// ToggleCourse flips the selection of one course
// @Summary Toggle a course
// @Description Selects an unselected course with defaults, or removes a selected one
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Param request body dto.ToggleCourseRequest true "Course to toggle"
// @Success 200 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Updated session state"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor/{sid}/toggle-course [post]
func (c *EditorController) ToggleCourse(ctx *gin.Context) {
	var req dto.ToggleCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid toggle data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.editorService.ToggleCourse(ctx.Param("sid"), req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// ToggleFolder applies a folder-level bulk action
// @Summary Toggle a folder
// @Description Selects or clears every course in a folder group
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Param request body dto.ToggleFolderRequest true "Folder and action"
// @Success 200 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Updated session state"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor/{sid}/toggle-folder [post]
func (c *EditorController) ToggleFolder(ctx *gin.Context) {
	var req dto.ToggleFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid toggle data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.editorService.ToggleFolder(ctx.Param("sid"), req.FolderID, req.Action)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// UpdateField edits one commercial term of a selected course
// @Summary Update an entry field
// @Description Edits fees, currency, duration or intake of a selected course
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Param request body dto.UpdateFieldRequest true "Field edit"
// @Success 200 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Updated session state"
// @Failure 400 {object} dto.ErrorResponse "Invalid field value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor/{sid}/field [put]
func (c *EditorController) UpdateField(ctx *gin.Context) {
	var req dto.UpdateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid field data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.editorService.UpdateField(ctx.Param("sid"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// CreateAndSelect creates a catalog course and selects it
// @Summary Create and select a course
// @Description Creates a catalog course from the picker search box and selects it
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Param request body dto.CreateAndSelectRequest true "Course name"
// @Success 200 {object} dto.APIResponse{data=dto.EditorSessionResponse} "Updated session state"
// @Failure 400 {object} dto.ErrorResponse "Invalid course name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 502 {object} dto.ErrorResponse "Catalog write failed"
// @Router /editor/{sid}/create-and-select [post]
func (c *EditorController) CreateAndSelect(ctx *gin.Context) {
	var req dto.CreateAndSelectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.editorService.CreateAndSelect(ctx, ctx.Param("sid"), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// Filter returns picker suggestions
// @Summary Filter the catalog
// @Description Returns up to five unselected matches plus a create-new suggestion
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Param q query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=[]dto.SuggestionResponse} "Suggestions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor/{sid}/filter [get]
func (c *EditorController) Filter(ctx *gin.Context) {
	suggestions, err := c.editorService.Filter(ctx.Param("sid"), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      suggestions,
		Timestamp: time.Now(),
	})
}

// Save flattens the session onto a university page
// @Summary Save an editor session
// @Description Writes the selection as course offerings on the university row
// @Tags editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Param request body dto.SaveEditorRequest false "Target university for unbound sessions"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session saved"
// @Failure 400 {object} dto.ErrorResponse "Session not bound to a university"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session or university not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /editor/{sid}/save [post]
func (c *EditorController) Save(ctx *gin.Context) {
	var req dto.SaveEditorRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid save data")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	if err := c.editorService.Save(ctx, ctx.Param("sid"), req.UniversityID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Selection saved"},
		Timestamp: time.Now(),
	})
}

// CloseSession drops a session without saving
// @Summary Close an editor session
// @Description Discards a session and any unsaved changes
// @Tags editor
// @Produce json
// @Security BearerAuth
// @Param sid path string true "Session ID"
// @Success 204 "Session closed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /editor/{sid} [delete]
func (c *EditorController) CloseSession(ctx *gin.Context) {
	c.editorService.Close(ctx.Param("sid"))
	ctx.Status(http.StatusNoContent)
}
