package middleware

import (
	"log/slog"
	"net/http"

	"vetclinic-booking-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  "Internal server error",
					Code:   httperr.CodeInternalError,
				})
			}
		}()
		c.Next()
	}
}
