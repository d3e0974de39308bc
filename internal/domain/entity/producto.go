package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa una unidad de inventario (SKU) de la tienda.
// Cantidad es el stock disponible; solo se modifica vía ventas y compras.
// Invariante: Cantidad >= 0 (garantizado por UPDATE condicional en persistencia).
type Producto struct {
	ID        string
	Nombre    string
	Tipo      string // categoría libre: "Tecnología", "Alimentos", "Compra", ...
	Cantidad  int64
	Precio    decimal.Decimal // precio de venta unitario
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValorTotal devuelve cantidad × precio (valor del stock a precio de venta).
func (p *Producto) ValorTotal() decimal.Decimal {
	return p.Precio.Mul(decimal.NewFromInt(p.Cantidad))
}

// TieneStock indica si hay al menos una unidad disponible.
func (p *Producto) TieneStock() bool {
	return p.Cantidad > 0
}

// TieneStockSuficiente indica si el stock cubre la cantidad requerida.
func (p *Producto) TieneStockSuficiente(cantidad int64) bool {
	return cantidad > 0 && p.Cantidad >= cantidad
}
