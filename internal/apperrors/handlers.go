package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure half of the API envelope:
// {success:false, error:<code>, details:<human text>}.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError writes an AppError as a JSON error response. Wrapped internal
// causes stay server-side; the client only ever sees code and message.
func HandleError(c *gin.Context, err *AppError) {
	details := interface{}(e2details(err))
	c.JSON(err.HTTPCode, ErrorResponse{
		Success: false,
		Error:   string(err.Code),
		Details: details,
	})
}

// HandleAnyError maps arbitrary errors onto the envelope, wrapping unknown
// ones as internal.
func HandleAnyError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	HandleError(c, InternalError(err))
}

func e2details(err *AppError) interface{} {
	if err.Details != nil {
		return gin.H{"message": err.Message, "fields": err.Details}
	}
	if err.HTTPCode >= http.StatusInternalServerError {
		// Never leak the underlying failure to the caller.
		return "Internal server error"
	}
	return err.Message
}
