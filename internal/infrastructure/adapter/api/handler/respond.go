package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/nsokolova/prediction-service/internal/domain/error"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to structured HTTP error responses.
// Internal detail never reaches the client; only the sentinel messages and
// the insufficient-funds detail (which names the required amount) do.
func respondError(c *gin.Context, err error) {
	switch {
	case domainerr.IsUnauthorizedError(err):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})

	case errors.Is(err, domainerr.ErrDuplicateUser):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Username or email already registered",
		})

	case errors.Is(err, domainerr.ErrModelNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Model not found",
		})

	case errors.Is(err, domainerr.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "User not found",
		})

	case errors.Is(err, domainerr.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})

	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})

	case errors.Is(err, domainerr.ErrInferenceFailure):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Prediction failed, the charge has been refunded",
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
	}
}

// badRequest answers a malformed request body or parameter
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
