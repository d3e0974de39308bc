package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago observados en el punto de venta. El campo es texto libre:
// el backend no restringe valores nuevos, estos son los que ofrece la UI.
const (
	PagoEfectivo      = "Efectivo"
	PagoTransferencia = "Transferencia"
	PagoTarjeta       = "Tarjeta"
	PagoCredito       = "Crédito"
	PagoPendiente     = "Pendiente"
	PagoPagado        = "Pagado"
)

// Venta representa una salida de stock registrada en el punto de venta.
// NombreProducto es copia desnormalizada del nombre al momento de vender.
// Invariante: Cantidad > 0. Eliminar una venta devuelve su cantidad al stock.
type Venta struct {
	ID             string
	ProductoID     string
	NombreProducto string
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	PrecioTotal    decimal.Decimal // cantidad × precio unitario
	CostoUnitario  decimal.Decimal // costo base para calcular ganancia (puede ser 0)
	Ganancia       decimal.Decimal
	Cliente        string
	MetodoPago     string
	FechaVenta     time.Time
	Observaciones  string
}

// CalcularGanancia devuelve (precioUnitario - costoUnitario) × cantidad.
func (v *Venta) CalcularGanancia() decimal.Decimal {
	margen := v.PrecioUnitario.Sub(v.CostoUnitario)
	return margen.Mul(decimal.NewFromInt(v.Cantidad))
}

// CalcularPrecioTotal devuelve precioUnitario × cantidad.
func (v *Venta) CalcularPrecioTotal() decimal.Decimal {
	return v.PrecioUnitario.Mul(decimal.NewFromInt(v.Cantidad))
}
