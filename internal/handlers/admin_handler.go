package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/apperrors"
	"proyectos-backend/internal/models"
	"proyectos-backend/internal/services"
)

// AdminHandler serves the review surface. Routes are gated by the admin
// middleware before any of these run.
type AdminHandler struct {
	proyectoService *services.ProyectoService
}

func NewAdminHandler(proyectoService *services.ProyectoService) *AdminHandler {
	return &AdminHandler{proyectoService: proyectoService}
}

// List handles GET /api/admin/proyectos
func (h *AdminHandler) List(c *gin.Context) {
	result, err := h.proyectoService.ListAdmin(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/admin/proyectos/:id
func (h *AdminHandler) Get(c *gin.Context) {
	id, err := proyectoID(c)
	if err != nil {
		c.Error(err)
		return
	}
	proyecto, err := h.proyectoService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// Update handles PUT /api/admin/proyectos/:id
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := proyectoID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var body services.ProyectoInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}
	proyecto, err := h.proyectoService.Update(c.Request.Context(), id, 0, body, true)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// Publish handles POST /api/admin/proyectos/:id/publicar
func (h *AdminHandler) Publish(c *gin.Context) {
	h.setStatus(c, models.StatusPublished)
}

// MarkSubmitted handles POST /api/admin/proyectos/:id/submitted
func (h *AdminHandler) MarkSubmitted(c *gin.Context) {
	h.setStatus(c, models.StatusSubmitted)
}

func (h *AdminHandler) setStatus(c *gin.Context, status string) {
	id, err := proyectoID(c)
	if err != nil {
		c.Error(err)
		return
	}
	proyecto, err := h.proyectoService.AdminSetStatus(c.Request.Context(), id, status)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}
