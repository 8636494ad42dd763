package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"proyectos-backend/internal/models"
)

type ProyectoRepository struct {
	db Querier
}

func NewProyectoRepository(db Querier) *ProyectoRepository {
	return &ProyectoRepository{db: db}
}

// ProyectoFilter narrows list queries. All present conditions are combined
// with AND; Search matches title, descripcion or tags as a case-insensitive
// substring.
type ProyectoFilter struct {
	PublishedOnly bool
	Status        string
	Ciclo         string
	Curso         string
	Search        string
}

func (f ProyectoFilter) whereClause() (string, []any) {
	var parts []string
	var args []any

	if f.PublishedOnly {
		args = append(args, models.StatusPublished)
		parts = append(parts, fmt.Sprintf("status = $%d", len(args)))
	} else if f.Status != "" {
		args = append(args, f.Status)
		parts = append(parts, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Curso != "" {
		args = append(args, f.Curso)
		parts = append(parts, fmt.Sprintf("curso_academico = $%d", len(args)))
	}
	if f.Ciclo != "" {
		args = append(args, f.Ciclo)
		parts = append(parts, fmt.Sprintf("ciclo_formativo = $%d", len(args)))
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		args = append(args, like, like, like)
		n := len(args)
		parts = append(parts, fmt.Sprintf("(title ILIKE $%d OR descripcion ILIKE $%d OR tags ILIKE $%d)", n-2, n-1, n))
	}

	if len(parts) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(parts, " AND "), args
}

const proyectoColumns = `id, user_id, title, descripcion, resumen, ciclo_formativo, curso_academico,
	tags, alumnos, status, video_url, pdf_urls, created_at, updated_at, submitted_at, published_at`

func scanProyecto(row pgx.Row) (*models.Proyecto, error) {
	var p models.Proyecto
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Descripcion,
		&p.Resumen,
		&p.CicloFormativo,
		&p.CursoAcademico,
		&p.Tags,
		&p.Alumnos,
		&p.Status,
		&p.VideoURL,
		&p.PdfUrls,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.SubmittedAt,
		&p.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProyectoRepository) GetByID(ctx context.Context, id int64) (*models.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE id = $1 LIMIT 1`
	return scanProyecto(r.db.QueryRow(ctx, query, id))
}

func (r *ProyectoRepository) GetPublicByID(ctx context.Context, id int64) (*models.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE id = $1 AND status = $2 LIMIT 1`
	return scanProyecto(r.db.QueryRow(ctx, query, id, models.StatusPublished))
}

func (r *ProyectoRepository) GetByUser(ctx context.Context, userID int64) (*models.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE user_id = $1 LIMIT 1`
	return scanProyecto(r.db.QueryRow(ctx, query, userID))
}

func (r *ProyectoRepository) Insert(ctx context.Context, p *models.Proyecto) error {
	query := `
		INSERT INTO proyectos
			(user_id, title, descripcion, resumen, ciclo_formativo, curso_academico,
			 tags, alumnos, status, pdf_urls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		p.UserID,
		p.Title,
		p.Descripcion,
		p.Resumen,
		p.CicloFormativo,
		p.CursoAcademico,
		p.Tags,
		p.Alumnos,
		p.Status,
		p.PdfUrls,
		p.CreatedAt,
	).Scan(&p.ID)
}

// Update rewrites the editable fields and switches status. The matching
// transition timestamp is stamped in SQL so that entering SUBMITTED or
// PUBLISHED re-stamps only its own column and leaves the other untouched.
func (r *ProyectoRepository) Update(ctx context.Context, p *models.Proyecto, now time.Time) error {
	query := `
		UPDATE proyectos SET
			title = $1,
			descripcion = $2,
			resumen = $3,
			ciclo_formativo = $4,
			curso_academico = $5,
			tags = $6,
			alumnos = $7,
			status = $8,
			submitted_at = CASE WHEN $8 = 'SUBMITTED' THEN $9 ELSE submitted_at END,
			published_at = CASE WHEN $8 = 'PUBLISHED' THEN $9 ELSE published_at END,
			updated_at = $9
		WHERE id = $10
	`
	_, err := r.db.Exec(ctx, query,
		p.Title,
		p.Descripcion,
		p.Resumen,
		p.CicloFormativo,
		p.CursoAcademico,
		p.Tags,
		p.Alumnos,
		p.Status,
		now,
		p.ID,
	)
	return err
}

// SetStatus forces the status and stamps the matching transition timestamp.
// Returns false when no row matched.
func (r *ProyectoRepository) SetStatus(ctx context.Context, id int64, status string, now time.Time) (bool, error) {
	query := `
		UPDATE proyectos SET
			status = $1,
			submitted_at = CASE WHEN $1 = 'SUBMITTED' THEN $2 ELSE submitted_at END,
			published_at = CASE WHEN $1 = 'PUBLISHED' THEN $2 ELSE published_at END,
			updated_at = $2
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, status, now, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProyectoRepository) UpdateFiles(ctx context.Context, id int64, videoURL *string, pdfUrls string, now time.Time) error {
	query := `UPDATE proyectos SET video_url = $1, pdf_urls = $2, updated_at = $3 WHERE id = $4`
	_, err := r.db.Exec(ctx, query, videoURL, pdfUrls, now, id)
	return err
}

func (r *ProyectoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM proyectos WHERE id = $1`, id)
	return err
}

func (r *ProyectoRepository) List(ctx context.Context, f ProyectoFilter, limit, offset int) ([]models.Proyecto, error) {
	where, args := f.whereClause()
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT `+proyectoColumns+`
		FROM proyectos
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proyectos := make([]models.Proyecto, 0)
	for rows.Next() {
		p, err := scanProyecto(rows)
		if err != nil {
			return nil, err
		}
		proyectos = append(proyectos, *p)
	}
	return proyectos, rows.Err()
}

func (r *ProyectoRepository) Count(ctx context.Context, f ProyectoFilter) (int, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(`SELECT COUNT(*) FROM proyectos %s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
