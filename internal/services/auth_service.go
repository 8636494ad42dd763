package services

import (
	"context"

	"proyectos-backend/internal/apperrors"
	"proyectos-backend/internal/dto"
	"proyectos-backend/internal/models"
	"proyectos-backend/internal/utils"
)

// UserStore is the credential lookup boundary.
// *repositories.UserRepository satisfies it.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

type LoginResult struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}

// Login verifies the credentials and issues a signed token carrying the
// identity proyecto operations rely on.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Credenciales inválidas")
	}
	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("Credenciales inválidas")
	}

	token, err := utils.GenerateJWT(user, utils.TokenDuration)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: dto.ToUserDTO(user)}, nil
}

// Me returns the profile for an authenticated user id.
func (s *AuthService) Me(ctx context.Context, id int64) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("Usuario no encontrado")
	}
	d := dto.ToUserDTO(user)
	return &d, nil
}
