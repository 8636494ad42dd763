package routes

import "github.com/gin-gonic/gin"

type Registrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// RegisterRoutes mounts every area under /api.
func RegisterRoutes(router *gin.Engine, areas ...Registrar) {
	api := router.Group("/api")
	for _, area := range areas {
		area.RegisterRoutes(api)
	}
}
