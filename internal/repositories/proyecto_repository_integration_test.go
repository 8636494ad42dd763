package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"proyectos-backend/internal/database"
	"proyectos-backend/internal/models"
	"proyectos-backend/internal/repositories"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("proyectos_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("container runtime not available, skipping: %v", err)
	}
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool))
	return pool
}

func createUser(t *testing.T, repo *repositories.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test",
		Email:        email,
		Rol:          models.RolAlumno,
		PasswordHash: "irrelevant",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func newProyecto(userID int64, title, ciclo, curso, tags string) *models.Proyecto {
	now := time.Now()
	return &models.Proyecto{
		UserID:         userID,
		Title:          title,
		Descripcion:    "descripcion de " + title,
		Resumen:        "resumen",
		CicloFormativo: ciclo,
		CursoAcademico: curso,
		Tags:           tags,
		Status:         models.StatusDraft,
		PdfUrls:        "[]",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestProyectoRepository_Lifecycle(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	users := repositories.NewUserRepository(pool)
	proyectos := repositories.NewProyectoRepository(pool)

	owner := createUser(t, users, "owner@example.com")
	p := newProyecto(owner.ID, "Domótica", "DAM", "2023-2024", "iot, arduino")
	require.NoError(t, proyectos.Insert(ctx, p))
	require.NotZero(t, p.ID)

	got, err := proyectos.GetByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Domótica", got.Title)
	assert.Nil(t, got.SubmittedAt)

	// DRAFT is invisible publicly.
	pub, err := proyectos.GetPublicByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, pub)

	// Submit, then publish; each transition stamps its own column only.
	found, err := proyectos.SetStatus(ctx, p.ID, models.StatusSubmitted, time.Now())
	require.NoError(t, err)
	require.True(t, found)

	found, err = proyectos.SetStatus(ctx, p.ID, models.StatusPublished, time.Now())
	require.NoError(t, err)
	require.True(t, found)

	got, err = proyectos.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SubmittedAt)
	require.NotNil(t, got.PublishedAt)
	firstPublished := *got.PublishedAt

	// Back to SUBMITTED: publishedAt must survive.
	_, err = proyectos.SetStatus(ctx, p.ID, models.StatusSubmitted, time.Now())
	require.NoError(t, err)
	got, err = proyectos.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PublishedAt)
	assert.WithinDuration(t, firstPublished, *got.PublishedAt, time.Millisecond)
	assert.Equal(t, models.StatusSubmitted, got.Status)

	// Unknown id reports not found.
	found, err = proyectos.SetStatus(ctx, 999999, models.StatusPublished, time.Now())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProyectoRepository_UpdateStampsOnStatusEntry(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	users := repositories.NewUserRepository(pool)
	proyectos := repositories.NewProyectoRepository(pool)

	owner := createUser(t, users, "owner@example.com")
	p := newProyecto(owner.ID, "Tienda", "DAW", "2023-2024", "web")
	require.NoError(t, proyectos.Insert(ctx, p))

	p.Title = "Tienda online"
	p.Status = models.StatusPublished
	require.NoError(t, proyectos.Update(ctx, p, time.Now()))

	got, err := proyectos.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tienda online", got.Title)
	assert.Equal(t, models.StatusPublished, got.Status)
	assert.NotNil(t, got.PublishedAt)
	assert.Nil(t, got.SubmittedAt)
}

func TestProyectoRepository_ListFiltersAndSearch(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	users := repositories.NewUserRepository(pool)
	proyectos := repositories.NewProyectoRepository(pool)

	seed := func(email, title, ciclo, curso, tags, status string) {
		u := createUser(t, users, email)
		p := newProyecto(u.ID, title, ciclo, curso, tags)
		require.NoError(t, proyectos.Insert(ctx, p))
		if status != models.StatusDraft {
			_, err := proyectos.SetStatus(ctx, p.ID, status, time.Now())
			require.NoError(t, err)
		}
	}

	seed("a@example.com", "Domótica", "DAM", "2023-2024", "iot, arduino", models.StatusPublished)
	seed("b@example.com", "Tienda online", "DAW", "2023-2024", "web", models.StatusPublished)
	seed("c@example.com", "Juego móvil", "DAM", "2024-2025", "unity", models.StatusPublished)
	seed("d@example.com", "Borrador secreto", "DAM", "2023-2024", "iot", models.StatusDraft)

	published := repositories.ProyectoFilter{PublishedOnly: true}
	rows, err := proyectos.List(ctx, published, 50, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	total, err := proyectos.Count(ctx, published)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	// Equality filters combine with AND.
	narrowed := repositories.ProyectoFilter{PublishedOnly: true, Ciclo: "DAM", Curso: "2023-2024"}
	rows, err = proyectos.List(ctx, narrowed, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Domótica", rows[0].Title)

	// Case-insensitive substring search across title/descripcion/tags.
	search := repositories.ProyectoFilter{PublishedOnly: true, Search: "ARDUINO"}
	rows, err = proyectos.List(ctx, search, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Domótica", rows[0].Title)

	// Admin view sees drafts when unfiltered, and can filter by status.
	rows, err = proyectos.List(ctx, repositories.ProyectoFilter{}, 50, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	drafts := repositories.ProyectoFilter{Status: models.StatusDraft}
	rows, err = proyectos.List(ctx, drafts, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Borrador secreto", rows[0].Title)
}

func TestProyectoRepository_UpdateFilesAndDelete(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	users := repositories.NewUserRepository(pool)
	proyectos := repositories.NewProyectoRepository(pool)

	owner := createUser(t, users, "owner@example.com")
	p := newProyecto(owner.ID, "Domótica", "DAM", "2023-2024", "iot")
	require.NoError(t, proyectos.Insert(ctx, p))

	video := "https://example.com/demo.mp4"
	require.NoError(t, proyectos.UpdateFiles(ctx, p.ID, &video, `["memoria.pdf"]`, time.Now()))

	got, err := proyectos.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.VideoURL)
	assert.Equal(t, video, *got.VideoURL)
	assert.Equal(t, `["memoria.pdf"]`, got.PdfUrls)

	require.NoError(t, proyectos.Delete(ctx, p.ID))
	got, err = proyectos.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	users := repositories.NewUserRepository(pool)

	created := createUser(t, users, "ana@example.com")

	got, err := users.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := users.FindByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ana@example.com", byID.Email)
}
