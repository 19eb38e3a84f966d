// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"pharmapos/internal/core/apperror"
	"pharmapos/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// Logs stack trace but never exposes internal details to client.
// It writes the response itself: the panic has already unwound past
// ErrorHandler, which cannot see it.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)

				appErr := apperror.NewInternal(fmt.Errorf("panic: %v", err))
				_ = c.Error(appErr)

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(appErr.HTTPStatus, ErrorResponse{
						Error: ErrorBody{
							Code:      appErr.Code,
							Message:   appErr.Message,
							RequestID: c.GetString("request_id"),
						},
					})
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
