package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra representa una entrada de stock adquirida a un proveedor.
// Invariantes: Cantidad > 0, CostoUnitario >= 0.
type Compra struct {
	ID             string
	ProductoID     string
	NombreProducto string
	Cantidad       int64
	CostoUnitario  decimal.Decimal
	CostoTotal     decimal.Decimal // cantidad × costo unitario
	Proveedor      string
	MetodoPago     string
	NumeroFactura  string
	FechaCompra    time.Time
	Observaciones  string
}

// CalcularCostoTotal devuelve costoUnitario × cantidad.
func (c *Compra) CalcularCostoTotal() decimal.Decimal {
	return c.CostoUnitario.Mul(decimal.NewFromInt(c.Cantidad))
}
