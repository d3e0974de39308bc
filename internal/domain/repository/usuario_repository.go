package repository

import (
	"time"

	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByUsername(username string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	// RegistrarAcceso actualiza FechaUltimoAcceso tras un login exitoso.
	RegistrarAcceso(id string, cuando time.Time) error
	Delete(id string) error
}
