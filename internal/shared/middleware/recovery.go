package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"videohub-backend/internal/shared/response"
)

// Recovery turns a panic into a 500 carrying the panic value as error text
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				response.Error(c, http.StatusInternalServerError, fmt.Sprint(err))
				c.Abort()
			}
		}()

		c.Next()
	}
}
