package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/middleware"
)

// FolderController handles catalog folder endpoints
type FolderController struct {
	folderService *services.FolderService
}

// NewFolderController creates a new FolderController
func NewFolderController(folderService *services.FolderService) *FolderController {
	return &FolderController{
		folderService: folderService,
	}
}

// CreateFolder creates a new folder
// @Summary Create a folder
// @Description Creates a new catalog folder at the end of the display order
// @Tags folders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFolderRequest true "Folder information"
// @Success 201 {object} dto.APIResponse{data=models.CourseFolder} "Folder created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Folder already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /folders [post]
func (c *FolderController) CreateFolder(ctx *gin.Context) {
	var req dto.CreateFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid folder data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	folder, err := c.folderService.CreateFolder(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      folder,
		Timestamp: time.Now(),
	})
}

// GetAllFolders retrieves all folders
// @Summary Get all folders
// @Description Retrieves all catalog folders in display order
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CourseFolder} "Folders retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /folders [get]
func (c *FolderController) GetAllFolders(ctx *gin.Context) {
	folders, err := c.folderService.GetAllFolders(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      folders,
		Timestamp: time.Now(),
	})
}

// RenameFolder renames a folder
// @Summary Rename a folder
// @Description Renames an existing catalog folder
// @Tags folders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Folder ID"
// @Param request body dto.RenameFolderRequest true "New folder name"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Folder renamed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Folder not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /folders/{id} [put]
func (c *FolderController) RenameFolder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RenameFolderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid folder data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.folderService.RenameFolder(ctx, id, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Folder renamed"},
		Timestamp: time.Now(),
	})
}

// DeleteFolder deletes a folder
// @Summary Delete a folder
// @Description Deletes a folder; its courses move to the uncategorized bucket
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Folder ID"
// @Success 204 "Folder deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid folder ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Folder not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /folders/{id} [delete]
func (c *FolderController) DeleteFolder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.folderService.DeleteFolder(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
