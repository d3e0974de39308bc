package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de severidad para AlertaInventario.
const (
	SeveridadCritico = "CRITICO"
	SeveridadAlto    = "ALTO"
)

// ProductoMasVendido agregado de ventas por producto (ranking del dashboard).
type ProductoMasVendido struct {
	ProductoID      string
	NombreProducto  string
	CantidadTotal   int64
	VecesVendido    int64
	IngresosTotales decimal.Decimal
}

// AlertaInventario aviso de stock agotado o bajo, derivado del inventario actual.
type AlertaInventario struct {
	ProductoID     string
	NombreProducto string
	TipoAlerta     string // STOCK_AGOTADO, STOCK_BAJO
	Mensaje        string
	NivelSeveridad string // CRITICO, ALTO
	FechaAlerta    time.Time
	Resuelta       bool
}

// MetricaDiaria totales de un día calendario (serie de tendencias).
type MetricaDiaria struct {
	Fecha         time.Time
	TotalVentas   decimal.Decimal
	TotalCompras  decimal.Decimal
	GananciaTotal decimal.Decimal
	NumeroVentas  int64
}

// TotalesFinancieros agregados globales de ventas, compras e inventario.
type TotalesFinancieros struct {
	TotalVentas     decimal.Decimal
	TotalCompras    decimal.Decimal
	TotalGanancias  decimal.Decimal
	ValorInventario decimal.Decimal
	NumeroProductos int64
	NumeroVentas    int64
	NumeroCompras   int64
}

// RentabilidadProducto margen y ROI acumulados de un producto.
// MargenPorcentaje y ROIPorcentaje son 0 cuando el denominador es 0.
type RentabilidadProducto struct {
	ProductoID       string
	NombreProducto   string
	TotalVendido     decimal.Decimal
	TotalComprado    decimal.Decimal
	GananciaNeta     decimal.Decimal
	MargenPorcentaje decimal.Decimal // (vendido - comprado) / vendido × 100
	ROIPorcentaje    decimal.Decimal // (vendido - comprado) / comprado × 100
}
