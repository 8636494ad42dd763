package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/responses"
)

// RequireAdmin gates a route on the admin role. Must run after
// Authenticate; the role comes from the verified token claims.
func RequireAdmin(c *gin.Context) {
	identity, ok := CurrentUser(c)
	if !ok {
		responses.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !identity.IsAdmin() {
		responses.AbortMessage(c, http.StatusForbidden, "Forbidden")
		return
	}
	c.Next()
}
