package models

import "time"

// Proyecto lifecycle states. The only transitions are DRAFT -> SUBMITTED
// (owner submit) and admin moves to PUBLISHED or back to SUBMITTED; there
// is no path back to DRAFT.
const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusPublished = "PUBLISHED"
)

func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusSubmitted || s == StatusPublished
}

// Proyecto matches the proyectos table row. Tags is stored comma-joined and
// PdfUrls as JSON-array text; dto bridges both to the API shape.
type Proyecto struct {
	ID             int64
	UserID         int64
	Title          string
	Descripcion    string
	Resumen        string
	CicloFormativo string
	CursoAcademico string
	Tags           string
	Alumnos        string
	Status         string
	VideoURL       *string
	PdfUrls        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	SubmittedAt    *time.Time
	PublishedAt    *time.Time
}
