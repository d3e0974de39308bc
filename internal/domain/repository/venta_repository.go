package repository

import (
	"time"

	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	List() ([]*entity.Venta, error)
	// ListBetween lista ventas con FechaVenta en [inicio, fin].
	ListBetween(inicio, fin time.Time) ([]*entity.Venta, error)
	Update(venta *entity.Venta) error
	Delete(id string) error
}
