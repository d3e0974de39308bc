package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarVentaRequest entrada para registrar una venta.
// PrecioUnitario y CostoUnitario son opcionales: si faltan se toman del producto.
type RegistrarVentaRequest struct {
	ProductoID     string           `json:"productoId" validate:"required"`
	Cantidad       int64            `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
	CostoUnitario  *decimal.Decimal `json:"costoUnitario"`
	Cliente        string           `json:"cliente" validate:"max=100"`
	MetodoPago     string           `json:"metodoPago" validate:"max=50"`
	FechaVenta     *time.Time       `json:"fechaVenta"`
	Observaciones  string           `json:"observaciones"`
}

// ActualizarVentaRequest entrada para editar una venta existente.
// Si cambian ProductoID o Cantidad se ajusta el inventario (devolver y volver a descontar).
type ActualizarVentaRequest struct {
	ProductoID     string           `json:"productoId" validate:"required"`
	Cantidad       int64            `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
	CostoUnitario  *decimal.Decimal `json:"costoUnitario"`
	Cliente        string           `json:"cliente" validate:"max=100"`
	MetodoPago     string           `json:"metodoPago" validate:"max=50"`
	FechaVenta     *time.Time       `json:"fechaVenta"`
	Observaciones  string           `json:"observaciones"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	PrecioTotal    decimal.Decimal `json:"precioTotal"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
	Ganancia       decimal.Decimal `json:"ganancia"`
	Cliente        string          `json:"cliente,omitempty"`
	MetodoPago     string          `json:"metodoPago,omitempty"`
	FechaVenta     time.Time       `json:"fechaVenta"`
	Observaciones  string          `json:"observaciones,omitempty"`
}
