package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumenFinancieroResponse salida de GET /api/finanzas/resumen.
type ResumenFinancieroResponse struct {
	TotalVentas        decimal.Decimal `json:"totalVentas"`
	TotalCompras       decimal.Decimal `json:"totalCompras"`
	GananciasNetas     decimal.Decimal `json:"gananciasNetas"`
	ValorInventario    decimal.Decimal `json:"valorInventario"`
	MargenPromedio     decimal.Decimal `json:"margenPromedio"`
	FechaActualizacion time.Time       `json:"fechaActualizacion"`
}

// EstadisticasFinancierasResponse salida de GET /api/finanzas/estadisticas:
// conteos globales para tarjetas del dashboard.
type EstadisticasFinancierasResponse struct {
	TotalProductos int64     `json:"totalProductos"`
	TotalVentas    int64     `json:"totalVentas"`
	TotalCompras   int64     `json:"totalCompras"`
	Timestamp      time.Time `json:"timestamp"`
}
