package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/core/appctx"
)

// TokenValidator validates an access token and resolves the operator it
// was issued for.
type TokenValidator interface {
	ValidateToken(token string) (*appctx.Operator, error)
}

// Auth middleware validates the bearer token and binds the operator to the
// request context. Every write operation downstream reads the operator from
// context instead of a process-wide login flag.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			_ = c.Error(apperror.NewUnauthorized("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			_ = c.Error(apperror.NewUnauthorized("Authorization header must be Bearer token"))
			c.Abort()
			return
		}

		operator, err := validator.ValidateToken(parts[1])
		if err != nil {
			_ = c.Error(apperror.NewUnauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		ctx := appctx.WithOperator(c.Request.Context(), operator)
		c.Request = c.Request.WithContext(ctx)
		c.Set("operator", operator.Username)

		c.Next()
	}
}
