package repository

import (
	"context"
	"time"

	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// ReporteRepository consultas agregadas de solo lectura para reportes y dashboard.
type ReporteRepository interface {
	ContarProductos(ctx context.Context) (int64, error)
	ContarProductosEnStock(ctx context.Context) (int64, error)
	// ContarProductosStockBajo cuenta productos con cantidad <= umbral.
	ContarProductosStockBajo(ctx context.Context, umbral int64) (int64, error)
	// ProductosMasVendidos agrupa ventas por producto, ordenado por cantidad total descendente.
	ProductosMasVendidos(ctx context.Context, limite int) ([]entity.ProductoMasVendido, error)
	// TendenciasVentas agrupa ventas por día calendario entre inicio y fin, de más reciente a más antigua.
	TendenciasVentas(ctx context.Context, inicio, fin time.Time) ([]entity.MetricaDiaria, error)
	// RentabilidadProductos cruza ventas y compras por producto; excluye productos sin movimiento.
	RentabilidadProductos(ctx context.Context, limite int) ([]entity.RentabilidadProducto, error)
	// ProductosBajoUmbral lista los productos con cantidad <= umbral para derivar alertas.
	ProductosBajoUmbral(ctx context.Context, umbral int64) ([]*entity.Producto, error)
	// TotalesFinancieros agrega ventas, compras, ganancias y valor de inventario
	// de todo el histórico.
	TotalesFinancieros(ctx context.Context) (*entity.TotalesFinancieros, error)
}
