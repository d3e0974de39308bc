package client

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// UmbralStockBajoCliente tope para considerar stock bajo en los resúmenes
// locales (0 < cantidad <= umbral). El agotado (cantidad 0) cuenta aparte.
const UmbralStockBajoCliente int64 = 5

var cien = decimal.NewFromInt(100)

// EstadisticasInventario resumen calculado sobre una lista de productos.
type EstadisticasInventario struct {
	TotalProductos int             `json:"totalProductos"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	Agotados       int             `json:"agotados"`
	StockBajo      int             `json:"stockBajo"`
	Categorias     int             `json:"categorias"`
}

// EstadisticasVentas resumen calculado sobre una lista de ventas.
// Los campos "hoy" comparan contra el día calendario de la hora de referencia.
type EstadisticasVentas struct {
	TotalVentas   int             `json:"totalVentas"`
	IngresoTotal  decimal.Decimal `json:"ingresoTotal"`
	GananciaTotal decimal.Decimal `json:"gananciaTotal"`
	VentasHoy     int             `json:"ventasHoy"`
	IngresoHoy    decimal.Decimal `json:"ingresoHoy"`
}

// EstadisticasCompras resumen calculado sobre una lista de compras.
type EstadisticasCompras struct {
	TotalCompras int             `json:"totalCompras"`
	CostoTotal   decimal.Decimal `json:"costoTotal"`
	CostoMesRef  decimal.Decimal `json:"costoMes"`
	Pendientes   int             `json:"pendientes"`
	Pagadas      int             `json:"pagadas"`
	Proveedores  int             `json:"proveedores"`
}

// CalcularEstadisticasInventario agrega en memoria, sin tocar la red.
// Usa UmbralStockBajoCliente si umbral <= 0.
func CalcularEstadisticasInventario(productos []dto.ProductoResponse, umbral int64) EstadisticasInventario {
	if umbral <= 0 {
		umbral = UmbralStockBajoCliente
	}
	stats := EstadisticasInventario{TotalProductos: len(productos)}
	tipos := make(map[string]struct{})
	for _, p := range productos {
		stats.ValorTotal = stats.ValorTotal.Add(p.Precio.Mul(decimal.NewFromInt(p.Cantidad)))
		switch {
		case p.Cantidad == 0:
			stats.Agotados++
		case p.Cantidad <= umbral:
			stats.StockBajo++
		}
		if tipo := strings.TrimSpace(p.Tipo); tipo != "" {
			tipos[strings.ToLower(tipo)] = struct{}{}
		}
	}
	stats.Categorias = len(tipos)
	return stats
}

// CalcularEstadisticasVentas agrega totales e identifica las ventas del día
// calendario de referencia (zona horaria de referencia, no UTC).
func CalcularEstadisticasVentas(ventas []dto.VentaResponse, referencia time.Time) EstadisticasVentas {
	stats := EstadisticasVentas{TotalVentas: len(ventas)}
	for _, v := range ventas {
		stats.IngresoTotal = stats.IngresoTotal.Add(v.PrecioTotal)
		stats.GananciaTotal = stats.GananciaTotal.Add(v.Ganancia)
		if mismoDia(v.FechaVenta, referencia) {
			stats.VentasHoy++
			stats.IngresoHoy = stats.IngresoHoy.Add(v.PrecioTotal)
		}
	}
	return stats
}

// CalcularEstadisticasCompras agrega totales, el gasto del mes de referencia,
// el estado de pago según metodoPago y los proveedores distintos.
func CalcularEstadisticasCompras(compras []dto.CompraResponse, referencia time.Time) EstadisticasCompras {
	stats := EstadisticasCompras{TotalCompras: len(compras)}
	proveedores := make(map[string]struct{})
	for _, c := range compras {
		stats.CostoTotal = stats.CostoTotal.Add(c.CostoTotal)
		if mismoMes(c.FechaCompra, referencia) {
			stats.CostoMesRef = stats.CostoMesRef.Add(c.CostoTotal)
		}
		metodo := strings.ToLower(c.MetodoPago)
		switch {
		case strings.Contains(metodo, "pend"):
			stats.Pendientes++
		case strings.Contains(metodo, "pag"):
			stats.Pagadas++
		}
		if prov := strings.TrimSpace(c.Proveedor); prov != "" {
			proveedores[strings.ToLower(prov)] = struct{}{}
		}
	}
	stats.Proveedores = len(proveedores)
	return stats
}

// MargenPorcentaje margen sobre ingresos: (ingresos - costos) / ingresos × 100.
// Ingresos cero devuelve 0 en lugar de dividir.
func MargenPorcentaje(ingresos, costos decimal.Decimal) decimal.Decimal {
	if ingresos.IsZero() {
		return decimal.Zero
	}
	return ingresos.Sub(costos).Div(ingresos).Mul(cien)
}

// ROIPorcentaje retorno sobre la inversión: (ingresos - costos) / costos × 100.
// Costos cero devuelve 0 en lugar de dividir.
func ROIPorcentaje(ingresos, costos decimal.Decimal) decimal.Decimal {
	if costos.IsZero() {
		return decimal.Zero
	}
	return ingresos.Sub(costos).Div(costos).Mul(cien)
}

// BandasRentabilidad cortes para clasificar márgenes. Alta y Media son
// porcentajes: margen >= Alta es "ALTA", >= Media es "MEDIA", el resto "BAJA".
type BandasRentabilidad struct {
	Alta  decimal.Decimal
	Media decimal.Decimal
}

// BandasPorDefecto los cortes estándar del negocio: 30% y 15%.
func BandasPorDefecto() BandasRentabilidad {
	return BandasRentabilidad{
		Alta:  decimal.NewFromInt(30),
		Media: decimal.NewFromInt(15),
	}
}

// Clasificar ubica un margen porcentual en su banda.
func (b BandasRentabilidad) Clasificar(margen decimal.Decimal) string {
	switch {
	case margen.GreaterThanOrEqual(b.Alta):
		return "ALTA"
	case margen.GreaterThanOrEqual(b.Media):
		return "MEDIA"
	default:
		return "BAJA"
	}
}

func mismoDia(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func mismoMes(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}
