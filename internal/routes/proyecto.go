package routes

import (
	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/handlers"
	"proyectos-backend/internal/middlewares"
)

type ProyectoRoutes struct {
	handler *handlers.ProyectoHandler
}

func NewProyectoRoutes(handler *handlers.ProyectoHandler) *ProyectoRoutes {
	return &ProyectoRoutes{handler: handler}
}

func (r *ProyectoRoutes) RegisterRoutes(router *gin.RouterGroup) {
	proyectos := router.Group("/proyectos")
	{
		// Public catalogue, no auth.
		proyectos.GET("/public", r.handler.ListPublic)
		proyectos.GET("/public/:id", r.handler.GetPublic)
	}

	owned := proyectos.Group("")
	owned.Use(middlewares.Authenticate)
	{
		owned.GET("/mio", r.handler.GetMine)
		owned.PUT("/mio/archivos", r.handler.UpdateFiles)
		owned.POST("", r.handler.Create)
		owned.PUT("/:id", r.handler.Update)
		owned.POST("/:id/enviar", r.handler.Submit)
		owned.DELETE("/:id", r.handler.Delete)
	}
}
