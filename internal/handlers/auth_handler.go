package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/apperrors"
	"proyectos-backend/internal/middlewares"
	"proyectos-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest("Email y contraseña son obligatorios"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middlewares.CurrentUser(c)
	if !ok {
		c.Error(apperrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authService.Me(c.Request.Context(), identity.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}
