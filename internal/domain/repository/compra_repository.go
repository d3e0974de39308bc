package repository

import (
	"time"

	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// CompraRepository define el puerto de persistencia para Compra (DIP).
type CompraRepository interface {
	Create(compra *entity.Compra) error
	GetByID(id string) (*entity.Compra, error)
	List() ([]*entity.Compra, error)
	// ListBetween lista compras con FechaCompra en [inicio, fin].
	ListBetween(inicio, fin time.Time) ([]*entity.Compra, error)
	Update(compra *entity.Compra) error
	Delete(id string) error
}
