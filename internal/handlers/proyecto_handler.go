package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"proyectos-backend/internal/apperrors"
	"proyectos-backend/internal/middlewares"
	"proyectos-backend/internal/models"
	"proyectos-backend/internal/services"
)

type ProyectoHandler struct {
	proyectoService *services.ProyectoService
}

func NewProyectoHandler(proyectoService *services.ProyectoService) *ProyectoHandler {
	return &ProyectoHandler{proyectoService: proyectoService}
}

func proyectoID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest("Identificador inválido")
	}
	return id, nil
}

func identity(c *gin.Context) (models.Identity, error) {
	ident, ok := middlewares.CurrentUser(c)
	if !ok {
		return models.Identity{}, apperrors.Unauthorized("Unauthorized")
	}
	return ident, nil
}

// ListPublic handles GET /api/proyectos/public
func (h *ProyectoHandler) ListPublic(c *gin.Context) {
	result, err := h.proyectoService.ListPublic(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPublic handles GET /api/proyectos/public/:id
func (h *ProyectoHandler) GetPublic(c *gin.Context) {
	id, err := proyectoID(c)
	if err != nil {
		c.Error(err)
		return
	}
	proyecto, err := h.proyectoService.GetPublicByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// GetMine handles GET /api/proyectos/mio
func (h *ProyectoHandler) GetMine(c *gin.Context) {
	ident, err := identity(c)
	if err != nil {
		c.Error(err)
		return
	}
	proyecto, err := h.proyectoService.GetByUser(c.Request.Context(), ident.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// Create handles POST /api/proyectos
func (h *ProyectoHandler) Create(c *gin.Context) {
	ident, err := identity(c)
	if err != nil {
		c.Error(err)
		return
	}
	var body services.ProyectoInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}
	proyecto, err := h.proyectoService.Create(c.Request.Context(), ident.ID, body)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, proyecto)
}

// Update handles PUT /api/proyectos/:id
func (h *ProyectoHandler) Update(c *gin.Context) {
	ident, err := identity(c)
	if err != nil {
		c.Error(err)
		return
	}
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
	proyecto, err := h.proyectoService.Update(c.Request.Context(), id, ident.ID, body, false)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// Submit handles POST /api/proyectos/:id/enviar
func (h *ProyectoHandler) Submit(c *gin.Context) {
	ident, err := identity(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := proyectoID(c)
	if err != nil {
		c.Error(err)
		return
	}
	proyecto, err := h.proyectoService.Submit(c.Request.Context(), id, ident.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// Delete handles DELETE /api/proyectos/:id
func (h *ProyectoHandler) Delete(c *gin.Context) {
	ident, err := identity(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := proyectoID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.proyectoService.Delete(c.Request.Context(), id, ident.ID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateFiles handles PUT /api/proyectos/mio/archivos. It operates on the
// caller's own proyecto, so ownership holds by construction.
func (h *ProyectoHandler) UpdateFiles(c *gin.Context) {
	ident, err := identity(c)
	if err != nil {
		c.Error(err)
		return
	}
	var input services.FilesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperrors.BadRequest("Cuerpo de la petición inválido"))
		return
	}
	mine, err := h.proyectoService.GetByUser(c.Request.Context(), ident.ID)
	if err != nil {
		c.Error(err)
		return
	}
	proyecto, err := h.proyectoService.UpdateFiles(c.Request.Context(), mine.ID, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}
