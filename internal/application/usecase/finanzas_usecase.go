package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// FinanzasUseCase resumen financiero global: totales históricos de ventas,
// compras, ganancias y valor del inventario.
type FinanzasUseCase struct {
	reportes repository.ReporteRepository
}

// NewFinanzasUseCase construye el caso de uso de finanzas.
func NewFinanzasUseCase(reportes repository.ReporteRepository) *FinanzasUseCase {
	return &FinanzasUseCase{reportes: reportes}
}

// Resumen arma el resumen financiero del negocio. El margen promedio es
// (ventas - compras) / ventas × 100, 0 sin ventas.
func (uc *FinanzasUseCase) Resumen(ctx context.Context) (*dto.ResumenFinancieroResponse, error) {
	totales, err := uc.reportes.TotalesFinancieros(ctx)
	if err != nil {
		return nil, err
	}
	margen := decimal.Zero
	if totales.TotalVentas.IsPositive() {
		margen = totales.TotalVentas.Sub(totales.TotalCompras).Div(totales.TotalVentas).Mul(cien)
	}
	return &dto.ResumenFinancieroResponse{
		TotalVentas:        totales.TotalVentas,
		TotalCompras:       totales.TotalCompras,
		GananciasNetas:     totales.TotalGanancias,
		ValorInventario:    totales.ValorInventario,
		MargenPromedio:     margen,
		FechaActualizacion: time.Now(),
	}, nil
}

// Estadisticas devuelve los conteos globales de productos, ventas y compras.
func (uc *FinanzasUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasFinancierasResponse, error) {
	totales, err := uc.reportes.TotalesFinancieros(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasFinancierasResponse{
		TotalProductos: totales.NumeroProductos,
		TotalVentas:    totales.NumeroVentas,
		TotalCompras:   totales.NumeroCompras,
		Timestamp:      time.Now(),
	}, nil
}
