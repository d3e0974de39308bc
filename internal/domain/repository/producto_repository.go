package repository

import (
	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetByNombre busca por nombre sin distinguir mayúsculas ni acentos (usa NombreNormalizado).
	GetByNombre(nombre string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	// IncrementarCantidad ajusta el stock en delta (negativo para ventas). Cuando el delta es
	// negativo la actualización es condicional: devuelve domain.ErrInsufficientStock si el
	// stock disponible no cubre la resta.
	IncrementarCantidad(id string, delta int64) error
	// ActualizarPrecio fija solo el precio (usado al registrar compras con nuevo costo).
	ActualizarPrecio(id string, precio decimal.Decimal) error
	Delete(id string) error
}
