package models

import "time"

const (
	RolAdmin  = "admin"
	RolAlumno = "alumno"
)

// User matches the users table. PasswordHash never leaves the service
// layer; API responses go through dto.ToUserDTO.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Rol          string    `json:"rol"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated identity carried in the request context,
// decoded from the access token claims.
type Identity struct {
	ID    int64  `json:"id"`
	Rol   string `json:"rol"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (i Identity) IsAdmin() bool {
	return i.Rol == RolAdmin
}
