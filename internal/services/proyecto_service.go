package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"proyectos-backend/internal/apperrors"
	"proyectos-backend/internal/dto"
	"proyectos-backend/internal/models"
	"proyectos-backend/internal/repositories"
	"proyectos-backend/internal/utils"
)

// ProyectoStore is the persistence boundary of the proyecto lifecycle.
// *repositories.ProyectoRepository satisfies it.
type ProyectoStore interface {
	GetByID(ctx context.Context, id int64) (*models.Proyecto, error)
	GetPublicByID(ctx context.Context, id int64) (*models.Proyecto, error)
	GetByUser(ctx context.Context, userID int64) (*models.Proyecto, error)
	Insert(ctx context.Context, p *models.Proyecto) error
	Update(ctx context.Context, p *models.Proyecto, now time.Time) error
	SetStatus(ctx context.Context, id int64, status string, now time.Time) (bool, error)
	UpdateFiles(ctx context.Context, id int64, videoURL *string, pdfUrls string, now time.Time) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repositories.ProyectoFilter, limit, offset int) ([]models.Proyecto, error)
	Count(ctx context.Context, f repositories.ProyectoFilter) (int, error)
}

type ProyectoService struct {
	store ProyectoStore
}

func NewProyectoService(store ProyectoStore) *ProyectoService {
	return &ProyectoService{store: store}
}

type ProyectoInput struct {
	Title          string   `json:"title"`
	Descripcion    string   `json:"descripcion"`
	Resumen        string   `json:"resumen"`
	CicloFormativo string   `json:"cicloFormativo"`
	CursoAcademico string   `json:"cursoAcademico"`
	Tags           []string `json:"tags"`
	Alumnos        string   `json:"alumnos"`
	// Status is only honored on admin updates.
	Status string `json:"status,omitempty"`
}

// FilesInput distinguishes absent fields (nil) from present-but-empty ones:
// an absent field keeps the stored value.
type FilesInput struct {
	VideoURL *string   `json:"videoUrl"`
	PdfUrls  *[]string `json:"pdfUrls"`
}

type sanitizedProyecto struct {
	title   string
	desc    string
	resumen string
	ciclo   string
	curso   string
	tags    []string
	alumnos string
}

func sanitizeProyectoInput(body ProyectoInput) (sanitizedProyecto, error) {
	s := sanitizedProyecto{
		title:   utils.SanitizeString(body.Title),
		desc:    utils.SanitizeString(body.Descripcion),
		resumen: utils.SanitizeString(body.Resumen),
		ciclo:   utils.SanitizeString(body.CicloFormativo),
		curso:   utils.SanitizeString(body.CursoAcademico),
		tags:    utils.SanitizeTags(body.Tags),
		alumnos: utils.SanitizeString(body.Alumnos),
	}
	if s.title == "" || s.desc == "" || s.resumen == "" || s.ciclo == "" || s.curso == "" {
		return s, apperrors.BadRequest("Campos requeridos faltantes")
	}
	return s, nil
}

// Create inserts the caller's proyecto as a DRAFT. A user owns at most one
// proyecto; the existence check here is check-then-act, as the schema
// carries no uniqueness on user_id.
func (s *ProyectoService) Create(ctx context.Context, userID int64, body ProyectoInput) (*dto.ProyectoDTO, error) {
	fields, err := sanitizeProyectoInput(body)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.BadRequest("Ya tienes un proyecto")
	}

	now := time.Now()
	proyecto := &models.Proyecto{
		UserID:         userID,
		Title:          fields.title,
		Descripcion:    fields.desc,
		Resumen:        fields.resumen,
		CicloFormativo: fields.ciclo,
		CursoAcademico: fields.curso,
		Tags:           strings.Join(fields.tags, ", "),
		Alumnos:        fields.alumnos,
		Status:         models.StatusDraft,
		PdfUrls:        "[]",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Insert(ctx, proyecto); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, proyecto.ID)
}

// Update rewrites all editable fields. Owners may not touch a PUBLISHED
// proyecto; admins may, and may additionally switch status, which stamps
// the matching transition timestamp.
func (s *ProyectoService) Update(ctx context.Context, id, userID int64, body ProyectoInput, allowAdmin bool) (*dto.ProyectoDTO, error) {
	proyecto, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}
	if !allowAdmin && proyecto.UserID != userID {
		return nil, apperrors.Forbidden("No autorizado")
	}
	if !allowAdmin && proyecto.Status == models.StatusPublished {
		return nil, apperrors.BadRequest("No se puede editar un proyecto publicado")
	}

	fields, err := sanitizeProyectoInput(body)
	if err != nil {
		return nil, err
	}

	nextStatus := proyecto.Status
	if allowAdmin && models.IsValidStatus(body.Status) {
		nextStatus = body.Status
	}

	alumnos := fields.alumnos
	if alumnos == "" {
		alumnos = proyecto.Alumnos
	}

	proyecto.Title = fields.title
	proyecto.Descripcion = fields.desc
	proyecto.Resumen = fields.resumen
	proyecto.CicloFormativo = fields.ciclo
	proyecto.CursoAcademico = fields.curso
	proyecto.Tags = strings.Join(fields.tags, ", ")
	proyecto.Alumnos = alumnos
	proyecto.Status = nextStatus

	if err := s.store.Update(ctx, proyecto, time.Now()); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Submit moves the caller's DRAFT to SUBMITTED and stamps submittedAt.
func (s *ProyectoService) Submit(ctx context.Context, id, userID int64) (*dto.ProyectoDTO, error) {
	proyecto, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}
	if proyecto.UserID != userID {
		return nil, apperrors.Forbidden("No autorizado")
	}
	if proyecto.Status != models.StatusDraft {
		return nil, apperrors.BadRequest("Solo se puede enviar un borrador")
	}

	if _, err := s.store.SetStatus(ctx, id, models.StatusSubmitted, time.Now()); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the caller's proyecto unless it is PUBLISHED.
func (s *ProyectoService) Delete(ctx context.Context, id, userID int64) error {
	proyecto, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if proyecto == nil {
		return apperrors.NotFound("Proyecto no encontrado")
	}
	if proyecto.UserID != userID {
		return apperrors.Forbidden("No autorizado")
	}
	if proyecto.Status == models.StatusPublished {
		return apperrors.BadRequest("No se puede borrar un proyecto publicado")
	}
	return s.store.Delete(ctx, id)
}

// UpdateFiles replaces videoUrl and pdfUrls, keeping the stored value for
// any absent input field.
func (s *ProyectoService) UpdateFiles(ctx context.Context, id int64, input FilesInput) (*dto.ProyectoDTO, error) {
	proyecto, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}

	videoURL := input.VideoURL
	if videoURL == nil {
		videoURL = proyecto.VideoURL
	}

	pdfUrls := dto.ParseArrayField(proyecto.PdfUrls)
	if input.PdfUrls != nil {
		pdfUrls = *input.PdfUrls
	}
	encoded, err := json.Marshal(pdfUrls)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateFiles(ctx, id, videoURL, string(encoded), time.Now()); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// AdminSetStatus forces the status unconditionally, stamping the matching
// transition timestamp.
func (s *ProyectoService) AdminSetStatus(ctx context.Context, id int64, status string) (*dto.ProyectoDTO, error) {
	if !models.IsValidStatus(status) {
		return nil, apperrors.BadRequest("Estado inválido")
	}
	found, err := s.store.SetStatus(ctx, id, status, time.Now())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}
	return s.GetByID(ctx, id)
}

func (s *ProyectoService) GetByID(ctx context.Context, id int64) (*dto.ProyectoDTO, error) {
	proyecto, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}
	d := dto.ToProyectoDTO(proyecto)
	return &d, nil
}

func (s *ProyectoService) GetByUser(ctx context.Context, userID int64) (*dto.ProyectoDTO, error) {
	proyecto, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}
	d := dto.ToProyectoDTO(proyecto)
	return &d, nil
}

func (s *ProyectoService) GetPublicByID(ctx context.Context, id int64) (*dto.ProyectoPublicDTO, error) {
	proyecto, err := s.store.GetPublicByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, apperrors.NotFound("Proyecto no encontrado")
	}
	d := dto.ToProyectoPublicDTO(proyecto)
	return &d, nil
}

// ListPublic returns PUBLISHED proyectos, newest first, with optional
// equality filters on ciclo/curso and substring search, paginated.
func (s *ProyectoService) ListPublic(ctx context.Context, query url.Values) (*dto.ProyectoPublicListDTO, error) {
	pag := utils.ParsePagination(query, utils.PaginationDefaults{Page: 1, PageSize: 9, MaxPageSize: 50})
	filter := repositories.ProyectoFilter{
		PublishedOnly: true,
		Curso:         utils.SanitizeString(query.Get("curso")),
		Ciclo:         utils.SanitizeString(query.Get("ciclo")),
		Search:        utils.SanitizeString(query.Get("q")),
	}

	proyectos, err := s.store.List(ctx, filter, pag.PageSize, pag.Offset)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProyectoPublicDTO, 0, len(proyectos))
	for i := range proyectos {
		items = append(items, dto.ToProyectoPublicDTO(&proyectos[i]))
	}
	return &dto.ProyectoPublicListDTO{
		Items:    items,
		Total:    total,
		Page:     pag.Page,
		PageSize: pag.PageSize,
	}, nil
}

// ListAdmin is the unrestricted listing with an extra optional status
// filter.
func (s *ProyectoService) ListAdmin(ctx context.Context, query url.Values) (*dto.ProyectoListDTO, error) {
	pag := utils.ParsePagination(query, utils.PaginationDefaults{Page: 1, PageSize: 20, MaxPageSize: 100})
	filter := repositories.ProyectoFilter{
		Curso:  utils.SanitizeString(query.Get("curso")),
		Ciclo:  utils.SanitizeString(query.Get("ciclo")),
		Search: utils.SanitizeString(query.Get("q")),
	}
	if status := query.Get("status"); models.IsValidStatus(status) {
		filter.Status = status
	}

	proyectos, err := s.store.List(ctx, filter, pag.PageSize, pag.Offset)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProyectoDTO, 0, len(proyectos))
	for i := range proyectos {
		items = append(items, dto.ToProyectoDTO(&proyectos[i]))
	}
	return &dto.ProyectoListDTO{
		Items:    items,
		Total:    total,
		Page:     pag.Page,
		PageSize: pag.PageSize,
	}, nil
}
