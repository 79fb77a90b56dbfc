package middleware

import (
	"strings"

	"hostelhub/errors"
	"hostelhub/response"
	"hostelhub/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the principal from the bearer token and
// stores its id in the context. Roles are deliberately not read from the
// token; tenant-scoped role checks happen inside the privileged
// operations against the members table.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// ErrorHandler converts uncaught AppErrors into envelope responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr := errors.GetAppError(err); appErr != nil {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
