package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats KPIs del dashboard. Las claves snake_case son el contrato
// con los frontends históricos (pestaña Reportes).
type DashboardStats struct {
	TotalProductos     int64           `json:"total_productos"`
	ProductosEnStock   int64           `json:"productos_en_stock"`
	ProductosStockBajo int64           `json:"productos_stock_bajo"`
	TotalVentasHoy     decimal.Decimal `json:"total_ventas_hoy"`
	TotalVentasMes     decimal.Decimal `json:"total_ventas_mes"`
	TotalComprasMes    decimal.Decimal `json:"total_compras_mes"`
	GananciasHoy       decimal.Decimal `json:"ganancias_hoy"`
	GananciasMes       decimal.Decimal `json:"ganancias_mes"`
	NumeroVentasHoy    int             `json:"numero_ventas_hoy"`
	NumeroVentasMes    int             `json:"numero_ventas_mes"`
	AlertasActivas     int64           `json:"alertas_activas"`
}

// ProductoMasVendidoDTO fila del ranking de productos por cantidad vendida.
type ProductoMasVendidoDTO struct {
	ProductoID      string          `json:"producto_id"`
	NombreProducto  string          `json:"nombre_producto"`
	CantidadTotal   int64           `json:"cantidad_total"`
	VecesVendido    int64           `json:"veces_vendido"`
	IngresosTotales decimal.Decimal `json:"ingresos_totales"`
}

// AlertaInventarioDTO aviso de stock agotado o bajo.
type AlertaInventarioDTO struct {
	ProductoID     string    `json:"productoId"`
	NombreProducto string    `json:"nombreProducto"`
	TipoAlerta     string    `json:"tipoAlerta"`
	Mensaje        string    `json:"mensaje"`
	NivelSeveridad string    `json:"nivelSeveridad"`
	FechaAlerta    time.Time `json:"fechaAlerta"`
	Resuelta       bool      `json:"resuelta"`
}

// AlertasData bloque de alertas del dashboard consolidado.
type AlertasData struct {
	Alertas         []AlertaInventarioDTO `json:"alertas"`
	TotalAlertas    int64                 `json:"totalAlertas"`
	AlertasCriticas int64                 `json:"alertasCriticas"`
	AlertasAltas    int64                 `json:"alertasAltas"`
}

// MetricaDiariaDTO punto de la serie de tendencias (un día calendario).
type MetricaDiariaDTO struct {
	Fecha         string          `json:"fecha"` // YYYY-MM-DD
	TotalVentas   decimal.Decimal `json:"totalVentas"`
	TotalCompras  decimal.Decimal `json:"totalCompras"`
	GananciaTotal decimal.Decimal `json:"gananciaTotal"`
	NumeroVentas  int64           `json:"numeroVentas"`
}

// RentabilidadProductoDTO margen y ROI acumulados por producto.
type RentabilidadProductoDTO struct {
	ProductoID       string          `json:"producto_id"`
	NombreProducto   string          `json:"nombre_producto"`
	TotalVendido     decimal.Decimal `json:"total_vendido"`
	TotalComprado    decimal.Decimal `json:"total_comprado"`
	GananciaNeta     decimal.Decimal `json:"ganancia_neta"`
	MargenPorcentaje decimal.Decimal `json:"margen_porcentaje"`
	ROIPorcentaje    decimal.Decimal `json:"roi_porcentaje"`
}

// DashboardCompletoResponse respuesta consolidada de GET /api/reportes/dashboard-completo.
// Una sola llamada alimenta todas las pestañas del dashboard.
type DashboardCompletoResponse struct {
	Stats                DashboardStats            `json:"stats"`
	ProductosMasVendidos []ProductoMasVendidoDTO   `json:"productos_mas_vendidos"`
	AlertasData          AlertasData               `json:"alertas_data"`
	Tendencias           []MetricaDiariaDTO        `json:"tendencias"`
	Rentabilidad         []RentabilidadProductoDTO `json:"rentabilidad"`
}

// ReporteVentasResponse ventas de un período con totales.
type ReporteVentasResponse struct {
	Ventas         []VentaResponse `json:"ventas"`
	TotalVentas    decimal.Decimal `json:"totalVentas"`
	TotalGanancias decimal.Decimal `json:"totalGanancias"`
	Cantidad       int             `json:"cantidad"`
	FechaInicio    string          `json:"fechaInicio"`
	FechaFin       string          `json:"fechaFin"`
}

// ReporteComprasResponse compras de un período con totales.
type ReporteComprasResponse struct {
	Compras      []CompraResponse `json:"compras"`
	TotalCompras decimal.Decimal  `json:"totalCompras"`
	Cantidad     int              `json:"cantidad"`
	FechaInicio  string           `json:"fechaInicio"`
	FechaFin     string           `json:"fechaFin"`
}
