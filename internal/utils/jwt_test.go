package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proyectos-backend/internal/models"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: 7, Name: "Ana", Email: "ana@example.com", Rol: models.RolAdmin}
	token, err := GenerateJWT(user, TokenDuration)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Rol)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.NotEmpty(t, claims.ID)

	identity := claims.Identity()
	assert.True(t, identity.IsAdmin())
	assert.Equal(t, int64(7), identity.ID)
}

func TestVerifyJWT_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: 1, Email: "x@example.com", Rol: models.RolAlumno}
	token, err := GenerateJWT(user, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	user := &models.User{ID: 1, Email: "x@example.com", Rol: models.RolAlumno}
	token, err := GenerateJWT(user, TokenDuration)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3creta")
	require.NoError(t, err)
	assert.NoError(t, VerifyPassword(hash, "s3creta"))
	assert.Error(t, VerifyPassword(hash, "otra"))
}
