package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

// Parámetros del dashboard consolidado.
const (
	// UmbralStockBajo marca un producto como "stock bajo" en alertas y KPIs.
	UmbralStockBajo int64 = 10
	// DiasTendencias ventana de la serie diaria de tendencias.
	DiasTendencias = 30
	// LimiteMasVendidos filas del ranking de productos.
	LimiteMasVendidos = 10
	// LimiteRentabilidad filas del reporte de rentabilidad.
	LimiteRentabilidad = 15
)

// ReportesUseCase arma el dashboard consolidado y los reportes por período.
// Las tres consultas agregadas pesadas (ranking, tendencias, rentabilidad)
// corren en paralelo; los KPIs se derivan de las ventas y compras del mes.
type ReportesUseCase struct {
	reportes repository.ReporteRepository
	ventas   repository.VentaRepository
	compras  repository.CompraRepository
}

// NewReportesUseCase construye el caso de uso.
func NewReportesUseCase(reportes repository.ReporteRepository, ventas repository.VentaRepository, compras repository.CompraRepository) *ReportesUseCase {
	return &ReportesUseCase{reportes: reportes, ventas: ventas, compras: compras}
}

type rankingResult struct {
	items []entity.ProductoMasVendido
	err   error
}

type tendenciasResult struct {
	items []entity.MetricaDiaria
	err   error
}

type rentabilidadResult struct {
	items []entity.RentabilidadProducto
	err   error
}

// DashboardCompleto devuelve stats, ranking, alertas, tendencias y
// rentabilidad en una sola respuesta.
func (uc *ReportesUseCase) DashboardCompleto(ctx context.Context) (*dto.DashboardCompletoResponse, error) {
	rankingCh := make(chan rankingResult, 1)
	tendenciasCh := make(chan tendenciasResult, 1)
	rentabilidadCh := make(chan rentabilidadResult, 1)

	go func() {
		items, err := uc.reportes.ProductosMasVendidos(ctx, LimiteMasVendidos)
		rankingCh <- rankingResult{items: items, err: err}
	}()
	go func() {
		ahora := time.Now()
		items, err := uc.reportes.TendenciasVentas(ctx, ahora.AddDate(0, 0, -DiasTendencias), ahora)
		tendenciasCh <- tendenciasResult{items: items, err: err}
	}()
	go func() {
		items, err := uc.reportes.RentabilidadProductos(ctx, LimiteRentabilidad)
		rentabilidadCh <- rentabilidadResult{items: items, err: err}
	}()

	stats, alertas, err := uc.statsYAlertas(ctx)
	if err != nil {
		return nil, err
	}

	ranking := <-rankingCh
	if ranking.err != nil {
		return nil, fmt.Errorf("productos más vendidos: %w", ranking.err)
	}
	tendencias := <-tendenciasCh
	if tendencias.err != nil {
		return nil, fmt.Errorf("tendencias: %w", tendencias.err)
	}
	rentabilidad := <-rentabilidadCh
	if rentabilidad.err != nil {
		return nil, fmt.Errorf("rentabilidad: %w", rentabilidad.err)
	}

	stats.AlertasActivas = alertas.TotalAlertas
	return &dto.DashboardCompletoResponse{
		Stats:                *stats,
		ProductosMasVendidos: toMasVendidosDTO(ranking.items),
		AlertasData:          *alertas,
		Tendencias:           toTendenciasDTO(tendencias.items),
		Rentabilidad:         toRentabilidadDTO(rentabilidad.items),
	}, nil
}

// ReporteVentas lista las ventas del período [inicio, fin] con totales.
func (uc *ReportesUseCase) ReporteVentas(inicio, fin time.Time) (*dto.ReporteVentasResponse, error) {
	if fin.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.ventas.ListBetween(inicioDelDia(inicio), finDelDia(fin))
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	ganancias := decimal.Zero
	for _, v := range list {
		total = total.Add(v.PrecioTotal)
		ganancias = ganancias.Add(v.Ganancia)
	}
	return &dto.ReporteVentasResponse{
		Ventas:         toVentaResponses(list),
		TotalVentas:    total,
		TotalGanancias: ganancias,
		Cantidad:       len(list),
		FechaInicio:    inicio.Format("2006-01-02"),
		FechaFin:       fin.Format("2006-01-02"),
	}, nil
}

// ReporteCompras lista las compras del período [inicio, fin] con totales.
func (uc *ReportesUseCase) ReporteCompras(inicio, fin time.Time) (*dto.ReporteComprasResponse, error) {
	if fin.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.compras.ListBetween(inicioDelDia(inicio), finDelDia(fin))
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, c := range list {
		total = total.Add(c.CostoTotal)
	}
	return &dto.ReporteComprasResponse{
		Compras:      toCompraResponses(list),
		TotalCompras: total,
		Cantidad:     len(list),
		FechaInicio:  inicio.Format("2006-01-02"),
		FechaFin:     fin.Format("2006-01-02"),
	}, nil
}

// MasVendidos devuelve el ranking de productos por cantidad vendida.
func (uc *ReportesUseCase) MasVendidos(ctx context.Context, limite int) ([]dto.ProductoMasVendidoDTO, error) {
	if limite <= 0 {
		limite = LimiteMasVendidos
	}
	items, err := uc.reportes.ProductosMasVendidos(ctx, limite)
	if err != nil {
		return nil, err
	}
	return toMasVendidosDTO(items), nil
}

// Tendencias devuelve la serie diaria de los últimos dias días.
func (uc *ReportesUseCase) Tendencias(ctx context.Context, dias int) ([]dto.MetricaDiariaDTO, error) {
	if dias <= 0 {
		dias = DiasTendencias
	}
	ahora := time.Now()
	items, err := uc.reportes.TendenciasVentas(ctx, ahora.AddDate(0, 0, -dias), ahora)
	if err != nil {
		return nil, err
	}
	return toTendenciasDTO(items), nil
}

// Rentabilidad devuelve margen y ROI acumulados por producto.
func (uc *ReportesUseCase) Rentabilidad(ctx context.Context, limite int) ([]dto.RentabilidadProductoDTO, error) {
	if limite <= 0 {
		limite = LimiteRentabilidad
	}
	items, err := uc.reportes.RentabilidadProductos(ctx, limite)
	if err != nil {
		return nil, err
	}
	return toRentabilidadDTO(items), nil
}

// statsYAlertas calcula los KPIs del mes en curso y deriva las alertas de
// stock del inventario actual.
func (uc *ReportesUseCase) statsYAlertas(ctx context.Context) (*dto.DashboardStats, *dto.AlertasData, error) {
	totalProductos, err := uc.reportes.ContarProductos(ctx)
	if err != nil {
		return nil, nil, err
	}
	enStock, err := uc.reportes.ContarProductosEnStock(ctx)
	if err != nil {
		return nil, nil, err
	}
	stockBajo, err := uc.reportes.ContarProductosStockBajo(ctx, UmbralStockBajo)
	if err != nil {
		return nil, nil, err
	}

	ahora := time.Now()
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	ventasMes, err := uc.ventas.ListBetween(inicioMes, finDelDia(ahora))
	if err != nil {
		return nil, nil, err
	}
	comprasMes, err := uc.compras.ListBetween(inicioMes, finDelDia(ahora))
	if err != nil {
		return nil, nil, err
	}

	stats := &dto.DashboardStats{
		TotalProductos:     totalProductos,
		ProductosEnStock:   enStock,
		ProductosStockBajo: stockBajo,
		TotalVentasHoy:     decimal.Zero,
		TotalVentasMes:     decimal.Zero,
		TotalComprasMes:    decimal.Zero,
		GananciasHoy:       decimal.Zero,
		GananciasMes:       decimal.Zero,
	}
	hoyInicio, hoyFin := rangoHoy(ahora)
	for _, v := range ventasMes {
		stats.TotalVentasMes = stats.TotalVentasMes.Add(v.PrecioTotal)
		stats.GananciasMes = stats.GananciasMes.Add(v.Ganancia)
		stats.NumeroVentasMes++
		if !v.FechaVenta.Before(hoyInicio) && !v.FechaVenta.After(hoyFin) {
			stats.TotalVentasHoy = stats.TotalVentasHoy.Add(v.PrecioTotal)
			stats.GananciasHoy = stats.GananciasHoy.Add(v.Ganancia)
			stats.NumeroVentasHoy++
		}
	}
	for _, c := range comprasMes {
		stats.TotalComprasMes = stats.TotalComprasMes.Add(c.CostoTotal)
	}

	alertas, err := uc.alertasInventario(ctx)
	if err != nil {
		return nil, nil, err
	}
	return stats, alertas, nil
}

// alertasInventario deriva alertas del inventario actual: CRITICO para stock
// agotado, ALTO para stock bajo el umbral. No hay tabla de alertas.
func (uc *ReportesUseCase) alertasInventario(ctx context.Context) (*dto.AlertasData, error) {
	productos, err := uc.reportes.ProductosBajoUmbral(ctx, UmbralStockBajo)
	if err != nil {
		return nil, err
	}
	data := &dto.AlertasData{Alertas: make([]dto.AlertaInventarioDTO, 0, len(productos))}
	ahora := time.Now()
	for _, p := range productos {
		alerta := dto.AlertaInventarioDTO{
			ProductoID:     p.ID,
			NombreProducto: p.Nombre,
			FechaAlerta:    ahora,
		}
		if p.Cantidad == 0 {
			alerta.TipoAlerta = "STOCK_AGOTADO"
			alerta.NivelSeveridad = entity.SeveridadCritico
			alerta.Mensaje = fmt.Sprintf("El producto %s está agotado", p.Nombre)
			data.AlertasCriticas++
		} else {
			alerta.TipoAlerta = "STOCK_BAJO"
			alerta.NivelSeveridad = entity.SeveridadAlto
			alerta.Mensaje = fmt.Sprintf("El producto %s tiene solo %d unidades", p.Nombre, p.Cantidad)
			data.AlertasAltas++
		}
		data.Alertas = append(data.Alertas, alerta)
		data.TotalAlertas++
	}
	return data, nil
}

func inicioDelDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func finDelDia(t time.Time) time.Time {
	return inicioDelDia(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func toMasVendidosDTO(items []entity.ProductoMasVendido) []dto.ProductoMasVendidoDTO {
	out := make([]dto.ProductoMasVendidoDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ProductoMasVendidoDTO{
			ProductoID:      it.ProductoID,
			NombreProducto:  it.NombreProducto,
			CantidadTotal:   it.CantidadTotal,
			VecesVendido:    it.VecesVendido,
			IngresosTotales: it.IngresosTotales,
		})
	}
	return out
}

func toTendenciasDTO(items []entity.MetricaDiaria) []dto.MetricaDiariaDTO {
	out := make([]dto.MetricaDiariaDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MetricaDiariaDTO{
			Fecha:         it.Fecha.Format("2006-01-02"),
			TotalVentas:   it.TotalVentas,
			TotalCompras:  it.TotalCompras,
			GananciaTotal: it.GananciaTotal,
			NumeroVentas:  it.NumeroVentas,
		})
	}
	return out
}

func toRentabilidadDTO(items []entity.RentabilidadProducto) []dto.RentabilidadProductoDTO {
	out := make([]dto.RentabilidadProductoDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RentabilidadProductoDTO{
			ProductoID:       it.ProductoID,
			NombreProducto:   it.NombreProducto,
			TotalVendido:     it.TotalVendido,
			TotalComprado:    it.TotalComprado,
			GananciaNeta:     it.GananciaNeta,
			MargenPorcentaje: it.MargenPorcentaje,
			ROIPorcentaje:    it.ROIPorcentaje,
		})
	}
	return out
}
