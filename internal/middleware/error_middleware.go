package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/auth"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// HandleAPIError maps err onto a status code and an ErrorDetail body and aborts the request
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorResponse(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg("Request rejected")
	}

	c.AbortWithStatusJSON(status, detail)
}

func errorResponse(err error) (int, *dto.ErrorDetail) {
	switch {
	// Validation
	case errors.Is(err, apperrors.ErrValidationFailed):
		d := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.MessageOf(err, "Validation failed"))
		if details := apperrors.DetailsOf(err); len(details) > 0 {
			d = d.WithDetails(details)
		}
		return http.StatusBadRequest, d
	case errors.Is(err, apperrors.ErrReferencedUserMissing):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.ErrReferencedUserMissing.Error())
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrUnsupportedFile, apperrors.ErrFileTooLarge):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.MessageOf(err, err.Error()))

	// Authentication
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token has expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenNotFound, auth.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrLoginFailed):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeLoginFailed, apperrors.MessageOf(err, "Login failed"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")

	// Not found
	case errors.Is(err, apperrors.ErrNoteNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Note not found")
	case errors.Is(err, apperrors.ErrMentorNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Mentor profile not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.MessageOf(err, "Resource not found"))

	// Conflict
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrMentorAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Mentor profile already exists for this user")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.MessageOf(err, "Resource already exists"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, apperrors.MessageOf(err, "Conflict"))

	case errors.Is(err, apperrors.ErrStorageUnhealthy):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Storage unavailable")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// Recovery turns a panic into a logged 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		HandleAPIError(c, fmt.Errorf("panic: %v", recovered))
	})
}

// NoRoute answers unknown paths with a 404 error body
func NoRoute(c *gin.Context) {
	HandleAPIError(c, apperrors.NewResourceNotFoundError("Route not found"))
}
