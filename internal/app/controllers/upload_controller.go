package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/pkg/filestorage"
)

// UploadController handles image uploads for logos, photos and page images
type UploadController struct {
	storage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// UploadResponse carries the public path of a stored image
type UploadResponse struct {
	Path string `json:"path"`
}

// UploadImage stores an uploaded image
// @Summary Upload an image
// @Description Stores an image and returns its public path
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param folder query string false "Target subdirectory" Enums(logos, photos, pages)
// @Success 201 {object} dto.APIResponse{data=controllers.UploadResponse} "Image stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or unsupported image"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads/images [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image file is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subPath := ctx.Query("folder")
	switch subPath {
	case "", "logos", "photos", "pages":
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown upload folder")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.storage.SaveImage(fileHeader, subPath)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Could not store image")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      UploadResponse{Path: path},
		Timestamp: time.Now(),
	})
}
