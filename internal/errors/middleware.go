package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware tags every request with an id and turns errors
// collected on the gin context into a single JSON error response.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("RequestID", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors[0].Err
			Err(c, err)
			c.Abort()
		}
	}
}

// RecoveryMiddleware converts panics into a 500 without leaking the panic
// value to the caller.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID := c.GetString("RequestID")

				log.Error().Interface("panic", r).Str("request_id", requestID).Msg("panic recovered")

				c.JSON(http.StatusInternalServerError, &AppError{
					Type:      ErrTypeInternal,
					Message:   "internal error",
					Code:      http.StatusInternalServerError,
					RequestID: requestID,
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
