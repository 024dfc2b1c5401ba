package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursesvc/internal/app/models/dto"
	"github.com/yigit/coursesvc/internal/pkg/apperrors"
)

// HandleAPIError writes the response for err. Domain errors are answered with their message
// as plain text; anything else becomes a 500 with the JSON error envelope.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.String(http.StatusNotFound, apperrors.MessageOf(err))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.String(http.StatusBadRequest, apperrors.MessageOf(err))
	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		c.String(http.StatusRequestEntityTooLarge, apperrors.MessageOf(err))
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		if gin.Mode() != gin.ReleaseMode {
			errorDetail = errorDetail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
