package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/selection"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error response.
// Selection editor errors carry their own types and are classified first;
// everything else matches against the apperrors sentinels.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *selection.ValidationError
	var resolutionErr *selection.ResolutionError
	var persistenceErr *selection.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationErr.Message)
		errorDetail = errorDetail.WithField(validationErr.Field)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	case errors.As(err, &resolutionErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found in catalog")
		errorDetail = errorDetail.WithDetails(resolutionErr.Error())
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	case errors.As(err, &persistenceErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Catalog write failed")
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(errorDetail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrNotAllowlisted):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotAllowlisted, "Email is not on the admin allow-list")))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrInvalidInquiryState):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Invalid inquiry state transition")))
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course already exists")))
	case errors.Is(err, apperrors.ErrFolderAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Folder already exists")))
	case errors.Is(err, apperrors.ErrUniversityAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "University short code already in use")))
	case errors.Is(err, apperrors.ErrEditorSessionNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Editor session not found or expired")))
	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrFolderNotFound),
		errors.Is(err, apperrors.ErrUniversityNotFound),
		errors.Is(err, apperrors.ErrTeamMemberNotFound),
		errors.Is(err, apperrors.ErrTestimonialNotFound),
		errors.Is(err, apperrors.ErrServiceNotFound),
		errors.Is(err, apperrors.ErrInquiryNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrRatesUnavailable):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Exchange rates unavailable")))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
