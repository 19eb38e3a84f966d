package middleware

import (
	"github.com/gin-gonic/gin"

	"pharmapos/internal/core/apperror"
	"pharmapos/pkg/logger"
)

// ErrorResponse is the single JSON error envelope returned by the API.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the structured error payload.
type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// ErrorHandler converts errors collected during request handling into the
// JSON error envelope. It is the single place where errors become responses;
// handlers only attach errors via c.Error and abort.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString("request_id")

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			appErr = apperror.NewInternal(err)
		}

		if appErr.HTTPStatus >= 500 {
			logger.Error(c.Request.Context(), "request failed",
				"code", appErr.Code,
				"error", err,
				"path", c.Request.URL.Path,
			)
		} else {
			logger.Warn(c.Request.Context(), "request rejected",
				"code", appErr.Code,
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Error: ErrorBody{
				Code:      appErr.Code,
				Message:   appErr.Message,
				Details:   appErr.Details,
				RequestID: requestID,
			},
		})
	}
}
