package routes

import (
	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/handlers"
	"proyectos-backend/internal/middlewares"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
}

func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.GET("/me", middlewares.Authenticate, r.handler.Me)
	}
}
