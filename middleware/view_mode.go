package middleware

import (
	"net/http"

	"gran-estacion/models"

	"github.com/gin-gonic/gin"
)

// IsViewMode reports whether the request asked for read-only display mode:
// a table QR code (`mesa`) or an explicit `modo=vista`.
func IsViewMode(c *gin.Context) bool {
	_, hasMesa := c.GetQuery("mesa")
	return hasMesa || c.Query("modo") == "vista"
}

// ViewModeGuard blocks cart and checkout mutation while in display mode. Menu
// reads stay available.
func ViewModeGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsViewMode(c) {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Ordering is disabled in display mode",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
