package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Issues []validation.Issue `json:"issues,omitempty"`
}

// Error sends a JSON error response.
// Validation failures render as 422 with every collected issue, AppErrors use
// their own status, and anything else is attached to the context for the
// request logger and reported as 500.
func Error(c *gin.Context, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Issues: vErr.Result.Issues})
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

