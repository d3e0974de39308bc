package dto

import "time"

// LoginRequest credenciales del formulario de login.
// El contrato histórico usa "usuario" y "contrasena" como nombres de campo.
type LoginRequest struct {
	Usuario    string `json:"usuario" validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID                 string     `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	NombreCompleto     string     `json:"nombreCompleto"`
	Rol                string     `json:"rol"`
	Activo             bool       `json:"activo"`
	FechaCreacion      time.Time  `json:"fechaCreacion"`
	FechaActualizacion time.Time  `json:"fechaActualizacion"`
	UltimoAcceso       *time.Time `json:"ultimoAcceso,omitempty"`
}

// LoginResponse salida de POST /api/login. Success false lleva solo Message.
type LoginResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Usuario *UsuarioResponse `json:"usuario,omitempty"`
	Token   string           `json:"token,omitempty"`
}

// CrearUsuarioRequest entrada para crear cuentas (cmd/seed y administración).
type CrearUsuarioRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=8"`
	Email          string `json:"email" validate:"omitempty,email"`
	NombreCompleto string `json:"nombreCompleto" validate:"max=200"`
	Rol            string `json:"rol" validate:"omitempty,oneof=ADMIN USER"`
}
