package routes

import (
	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/handlers"
	"proyectos-backend/internal/middlewares"
)

type AdminRoutes struct {
	handler *handlers.AdminHandler
}

func NewAdminRoutes(handler *handlers.AdminHandler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middlewares.Authenticate, middlewares.RequireAdmin)
	{
		admin.GET("/proyectos", r.handler.List)
		admin.GET("/proyectos/:id", r.handler.Get)
		admin.PUT("/proyectos/:id", r.handler.Update)
		admin.POST("/proyectos/:id/publicar", r.handler.Publish)
		admin.POST("/proyectos/:id/submitted", r.handler.MarkSubmitted)
	}
}
