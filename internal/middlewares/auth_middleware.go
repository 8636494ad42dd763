package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/models"
	"proyectos-backend/internal/responses"
	"proyectos-backend/internal/utils"
)

const identityKey = "identity"

// Authenticate verifies the Bearer token and stores the decoded identity
// in the request context.
func Authenticate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		responses.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	claims, err := utils.VerifyJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		responses.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.Set(identityKey, claims.Identity())
	c.Next()
}

// CurrentUser returns the identity stored by Authenticate.
func CurrentUser(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}
