package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporteRepo struct {
	productos *fakeProductoRepo
	ranking   []entity.ProductoMasVendido
	totales   *entity.TotalesFinancieros
}

func (r *fakeReporteRepo) ContarProductos(context.Context) (int64, error) {
	list, _ := r.productos.List()
	return int64(len(list)), nil
}

func (r *fakeReporteRepo) ContarProductosEnStock(context.Context) (int64, error) {
	list, _ := r.productos.List()
	var n int64
	for _, p := range list {
		if p.Cantidad > 0 {
			n++
		}
	}
	return n, nil
}

func (r *fakeReporteRepo) ContarProductosStockBajo(_ context.Context, umbral int64) (int64, error) {
	list, _ := r.productos.List()
	var n int64
	for _, p := range list {
		if p.Cantidad <= umbral {
			n++
		}
	}
	return n, nil
}

func (r *fakeReporteRepo) ProductosMasVendidos(context.Context, int) ([]entity.ProductoMasVendido, error) {
	return r.ranking, nil
}

func (r *fakeReporteRepo) TendenciasVentas(context.Context, time.Time, time.Time) ([]entity.MetricaDiaria, error) {
	return nil, nil
}

func (r *fakeReporteRepo) RentabilidadProductos(context.Context, int) ([]entity.RentabilidadProducto, error) {
	return nil, nil
}

func (r *fakeReporteRepo) ProductosBajoUmbral(_ context.Context, umbral int64) ([]*entity.Producto, error) {
	list, _ := r.productos.List()
	var out []*entity.Producto
	for _, p := range list {
		if p.Cantidad <= umbral {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeReporteRepo) TotalesFinancieros(context.Context) (*entity.TotalesFinancieros, error) {
	if r.totales != nil {
		return r.totales, nil
	}
	return &entity.TotalesFinancieros{}, nil
}

func TestDashboardCompleto(t *testing.T) {
	agotado := productoDePrueba("p2", 0, "3000")
	agotado.Nombre = "Azúcar"
	bajo := productoDePrueba("p3", 4, "2000")
	bajo.Nombre = "Sal"
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 50, "5000"), agotado, bajo)

	ventasRepo := newFakeVentaRepo()
	require.NoError(t, ventasRepo.Create(&entity.Venta{
		ID:          "v1",
		ProductoID:  "p1",
		Cantidad:    2,
		PrecioTotal: decimal.RequireFromString("10000"),
		Ganancia:    decimal.RequireFromString("3000"),
		FechaVenta:  time.Now(),
	}))
	comprasRepo := newFakeCompraRepo()
	require.NoError(t, comprasRepo.Create(&entity.Compra{
		ID:          "c1",
		ProductoID:  "p1",
		Cantidad:    5,
		CostoTotal:  decimal.RequireFromString("20000"),
		FechaCompra: time.Now(),
	}))

	reportes := &fakeReporteRepo{
		productos: productosRepo,
		ranking: []entity.ProductoMasVendido{
			{ProductoID: "p1", NombreProducto: "Café Molido", CantidadTotal: 2, VecesVendido: 1, IngresosTotales: decimal.RequireFromString("10000")},
		},
	}
	uc := NewReportesUseCase(reportes, ventasRepo, comprasRepo)

	resp, err := uc.DashboardCompleto(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Stats.TotalProductos)
	assert.Equal(t, int64(2), resp.Stats.ProductosEnStock)
	assert.Equal(t, int64(2), resp.Stats.ProductosStockBajo)
	assert.True(t, resp.Stats.TotalVentasHoy.Equal(decimal.RequireFromString("10000")))
	assert.True(t, resp.Stats.TotalVentasMes.Equal(decimal.RequireFromString("10000")))
	assert.True(t, resp.Stats.TotalComprasMes.Equal(decimal.RequireFromString("20000")))
	assert.True(t, resp.Stats.GananciasHoy.Equal(decimal.RequireFromString("3000")))
	assert.Equal(t, 1, resp.Stats.NumeroVentasHoy)
	assert.Equal(t, int64(2), resp.Stats.AlertasActivas)

	require.Len(t, resp.ProductosMasVendidos, 1)
	assert.Equal(t, "Café Molido", resp.ProductosMasVendidos[0].NombreProducto)

	// Una alerta CRITICO (agotado) y una ALTO (stock bajo).
	assert.Equal(t, int64(1), resp.AlertasData.AlertasCriticas)
	assert.Equal(t, int64(1), resp.AlertasData.AlertasAltas)
	require.Len(t, resp.AlertasData.Alertas, 2)
}

func TestReporteVentasPorPeriodo(t *testing.T) {
	ventasRepo := newFakeVentaRepo()
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, ventasRepo.Create(&entity.Venta{
		ID: "v1", ProductoID: "p1", Cantidad: 1,
		PrecioTotal: decimal.RequireFromString("5000"),
		Ganancia:    decimal.RequireFromString("1000"),
		FechaVenta:  base,
	}))
	require.NoError(t, ventasRepo.Create(&entity.Venta{
		ID: "v2", ProductoID: "p1", Cantidad: 2,
		PrecioTotal: decimal.RequireFromString("10000"),
		Ganancia:    decimal.RequireFromString("2000"),
		FechaVenta:  base.AddDate(0, 0, 10),
	}))

	uc := NewReportesUseCase(&fakeReporteRepo{productos: newFakeProductoRepo()}, ventasRepo, newFakeCompraRepo())

	resp, err := uc.ReporteVentas(base.AddDate(0, 0, -1), base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Cantidad)
	assert.True(t, resp.TotalVentas.Equal(decimal.RequireFromString("5000")))
	assert.True(t, resp.TotalGanancias.Equal(decimal.RequireFromString("1000")))
	assert.Equal(t, "2026-08-09", resp.FechaInicio)
}

func TestReporteVentasRangoInvertido(t *testing.T) {
	uc := NewReportesUseCase(&fakeReporteRepo{productos: newFakeProductoRepo()}, newFakeVentaRepo(), newFakeCompraRepo())
	_, err := uc.ReporteVentas(time.Now(), time.Now().AddDate(0, 0, -2))
	assert.Error(t, err)
}

func TestReporteComprasPorPeriodo(t *testing.T) {
	comprasRepo := newFakeCompraRepo()
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, comprasRepo.Create(&entity.Compra{
		ID: "c1", ProductoID: "p1", Cantidad: 5,
		CostoTotal:  decimal.RequireFromString("20000"),
		FechaCompra: base,
	}))

	uc := NewReportesUseCase(&fakeReporteRepo{productos: newFakeProductoRepo()}, newFakeVentaRepo(), comprasRepo)

	resp, err := uc.ReporteCompras(base, base)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Cantidad)
	assert.True(t, resp.TotalCompras.Equal(decimal.RequireFromString("20000")))
}
