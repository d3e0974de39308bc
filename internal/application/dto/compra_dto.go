package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarCompraRequest entrada para registrar una compra.
// ProductoID es opcional: si falta, el producto se resuelve por nombre
// (sin distinguir mayúsculas ni acentos) o se crea uno nuevo.
type RegistrarCompraRequest struct {
	ProductoID     string          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto" validate:"required,min=1,max=100"`
	Cantidad       int64           `json:"cantidad" validate:"required,gt=0"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
	Proveedor      string          `json:"proveedor" validate:"max=100"`
	MetodoPago     string          `json:"metodoPago" validate:"max=50"`
	NumeroFactura  string          `json:"numeroFactura" validate:"max=50"`
	FechaCompra    *time.Time      `json:"fechaCompra"`
	Observaciones  string          `json:"observaciones"`
}

// ActualizarCompraRequest entrada para editar los datos administrativos de una compra.
// No reajusta stock: la corrección de inventario se hace con una compra o venta nueva.
type ActualizarCompraRequest struct {
	Proveedor     string     `json:"proveedor" validate:"max=100"`
	MetodoPago    string     `json:"metodoPago" validate:"max=50"`
	NumeroFactura string     `json:"numeroFactura" validate:"max=50"`
	FechaCompra   *time.Time `json:"fechaCompra"`
	Observaciones string     `json:"observaciones"`
}

// CompraResponse salida de una compra.
type CompraResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int64           `json:"cantidad"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
	CostoTotal     decimal.Decimal `json:"costoTotal"`
	Proveedor      string          `json:"proveedor,omitempty"`
	MetodoPago     string          `json:"metodoPago,omitempty"`
	NumeroFactura  string          `json:"numeroFactura,omitempty"`
	FechaCompra    time.Time       `json:"fechaCompra"`
	Observaciones  string          `json:"observaciones,omitempty"`
}
