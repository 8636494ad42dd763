package dto

import (
	"encoding/json"
	"strings"
	"time"

	"proyectos-backend/internal/models"
)

type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

type ProyectoDTO struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"userId"`
	Title          string   `json:"title"`
	Descripcion    string   `json:"descripcion"`
	Resumen        string   `json:"resumen"`
	CicloFormativo string   `json:"cicloFormativo"`
	CursoAcademico string   `json:"cursoAcademico"`
	Tags           []string `json:"tags"`
	Alumnos        string   `json:"alumnos"`
	Status         string   `json:"status"`
	VideoURL       *string  `json:"videoUrl,omitempty"`
	PdfUrls        []string `json:"pdfUrls"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ProyectoPublicDTO is the anonymous visitor view: same shape minus the
// owning user id.
type ProyectoPublicDTO struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Descripcion    string   `json:"descripcion"`
	Resumen        string   `json:"resumen"`
	CicloFormativo string   `json:"cicloFormativo"`
	CursoAcademico string   `json:"cursoAcademico"`
	Tags           []string `json:"tags"`
	Alumnos        string   `json:"alumnos"`
	Status         string   `json:"status"`
	VideoURL       *string  `json:"videoUrl,omitempty"`
	PdfUrls        []string `json:"pdfUrls"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

type ProyectoListDTO struct {
	Items    []ProyectoDTO `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type ProyectoPublicListDTO struct {
	Items    []ProyectoPublicDTO `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

// ToUserDTO projects the public user fields; the password hash is never
// exposed.
func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Rol:   u.Rol,
	}
}

// TagsFromString splits the comma-joined stored representation into a
// trimmed list, dropping empty segments.
func TagsFromString(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseArrayField normalizes an array-like stored field: JSON-array text
// decodes as-is, anything else falls back to comma-split-and-trim.
func ParseArrayField(raw string) []string {
	if raw == "" {
		return make([]string, 0)
	}
	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if parsed == nil {
			return make([]string, 0)
		}
		return parsed
	}
	return TagsFromString(raw)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ToProyectoDTO(p *models.Proyecto) ProyectoDTO {
	return ProyectoDTO{
		ID:             p.ID,
		UserID:         p.UserID,
		Title:          p.Title,
		Descripcion:    p.Descripcion,
		Resumen:        p.Resumen,
		CicloFormativo: p.CicloFormativo,
		CursoAcademico: p.CursoAcademico,
		Tags:           TagsFromString(p.Tags),
		Alumnos:        p.Alumnos,
		Status:         p.Status,
		VideoURL:       p.VideoURL,
		PdfUrls:        ParseArrayField(p.PdfUrls),
		CreatedAt:      formatTimestamp(p.CreatedAt),
		UpdatedAt:      formatTimestamp(p.UpdatedAt),
	}
}

func ToProyectoPublicDTO(p *models.Proyecto) ProyectoPublicDTO {
	return ProyectoPublicDTO{
		ID:             p.ID,
		Title:          p.Title,
		Descripcion:    p.Descripcion,
		Resumen:        p.Resumen,
		CicloFormativo: p.CicloFormativo,
		CursoAcademico: p.CursoAcademico,
		Tags:           TagsFromString(p.Tags),
		Alumnos:        p.Alumnos,
		Status:         p.Status,
		VideoURL:       p.VideoURL,
		PdfUrls:        ParseArrayField(p.PdfUrls),
		CreatedAt:      formatTimestamp(p.CreatedAt),
		UpdatedAt:      formatTimestamp(p.UpdatedAt),
	}
}
