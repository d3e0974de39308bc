package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin = "ADMIN"
	RolUser  = "USER"
)

// Usuario representa una cuenta del sistema.
type Usuario struct {
	ID                 string
	Username           string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Email              string
	NombreCompleto     string
	Rol                string // ADMIN, USER
	Activo             bool
	FechaCreacion      time.Time
	FechaUltimoAcceso  *time.Time
	FechaActualizacion time.Time
}

// EstaActivo indica si la cuenta puede iniciar sesión.
func (u *Usuario) EstaActivo() bool {
	return u.Activo
}

// EsAdmin indica si el usuario tiene rol de administrador.
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}
