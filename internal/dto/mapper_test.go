package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proyectos-backend/internal/models"
)

func TestParseArrayField(t *testing.T) {
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, ParseArrayField(`["a.pdf","b.pdf"]`))
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, ParseArrayField("a.pdf, b.pdf"))
	assert.Empty(t, ParseArrayField(""))
	assert.NotNil(t, ParseArrayField(""))
	assert.Empty(t, ParseArrayField("[]"))
	assert.Equal(t, []string{"solo.pdf"}, ParseArrayField("solo.pdf"))
}

func TestTagsFromString(t *testing.T) {
	assert.Equal(t, []string{"web", "go"}, TagsFromString("web, go"))
	assert.Equal(t, []string{"web"}, TagsFromString("web,, ,"))
	assert.Empty(t, TagsFromString(""))
}

func TestToUserDTO_NeverExposesPasswordHash(t *testing.T) {
	user := &models.User{ID: 3, Name: "Ana", Email: "ana@example.com", Rol: "alumno", PasswordHash: "$2a$10$xxx"}
	d := ToUserDTO(user)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$10$xxx")
	assert.Equal(t, int64(3), d.ID)
	assert.Equal(t, "ana@example.com", d.Email)
}

func sampleProyecto() *models.Proyecto {
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return &models.Proyecto{
		ID:             12,
		UserID:         5,
		Title:          "Domótica",
		Descripcion:    "Casa inteligente",
		Resumen:        "Resumen",
		CicloFormativo: "DAM",
		CursoAcademico: "2023-2024",
		Tags:           "iot, arduino",
		Alumnos:        "Ana, Luis",
		Status:         models.StatusPublished,
		PdfUrls:        `["memoria.pdf"]`,
		CreatedAt:      created,
		UpdatedAt:      created.Add(time.Hour),
	}
}

func TestToProyectoDTO(t *testing.T) {
	d := ToProyectoDTO(sampleProyecto())
	assert.Equal(t, int64(5), d.UserID)
	assert.Equal(t, []string{"iot", "arduino"}, d.Tags)
	assert.Equal(t, []string{"memoria.pdf"}, d.PdfUrls)
	assert.Equal(t, "2024-06-01T10:00:00Z", d.CreatedAt)
	assert.Equal(t, "2024-06-01T11:00:00Z", d.UpdatedAt)
}

func TestToProyectoPublicDTO_OmitsUserID(t *testing.T) {
	d := ToProyectoPublicDTO(sampleProyecto())

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))
	assert.NotContains(t, asMap, "userId")
	assert.Equal(t, "Domótica", asMap["title"])
}

func TestToProyectoDTO_CommaFallbackForPdfUrls(t *testing.T) {
	p := sampleProyecto()
	p.PdfUrls = "a.pdf, b.pdf"
	d := ToProyectoDTO(p)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, d.PdfUrls)
}
