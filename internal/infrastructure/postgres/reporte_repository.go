package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

var cien = decimal.NewFromInt(100)

// ReporteRepo consultas agregadas de solo lectura para el dashboard y reportes.
type ReporteRepo struct {
	pool *pgxpool.Pool
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(pool *pgxpool.Pool) *ReporteRepo {
	return &ReporteRepo{pool: pool}
}

// ContarProductos cuenta todos los productos del inventario.
func (r *ReporteRepo) ContarProductos(ctx context.Context) (int64, error) {
	return r.contar(ctx, `SELECT COUNT(*) FROM productos`)
}

// ContarProductosEnStock cuenta los productos con cantidad mayor a cero.
func (r *ReporteRepo) ContarProductosEnStock(ctx context.Context) (int64, error) {
	return r.contar(ctx, `SELECT COUNT(*) FROM productos WHERE cantidad > 0`)
}

// ContarProductosStockBajo cuenta los productos con cantidad <= umbral.
func (r *ReporteRepo) ContarProductosStockBajo(ctx context.Context, umbral int64) (int64, error) {
	return r.contar(ctx, `SELECT COUNT(*) FROM productos WHERE cantidad <= $1`, umbral)
}

// ProductosMasVendidos agrupa las ventas por producto, ordenado por cantidad
// total vendida descendente.
func (r *ReporteRepo) ProductosMasVendidos(ctx context.Context, limite int) ([]entity.ProductoMasVendido, error) {
	const query = `
	SELECT
	    producto_id,
	    MAX(nombre_producto) AS nombre_producto,
	    SUM(cantidad)        AS cantidad_total,
	    COUNT(*)             AS veces_vendido,
	    SUM(precio_total)    AS ingresos_totales
	FROM ventas
	GROUP BY producto_id
	ORDER BY cantidad_total DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limite)
	if err != nil {
		return nil, fmt.Errorf("reportes.ProductosMasVendidos: %w", err)
	}
	defer rows.Close()

	var results []entity.ProductoMasVendido
	for rows.Next() {
		var row entity.ProductoMasVendido
		if err := rows.Scan(&row.ProductoID, &row.NombreProducto, &row.CantidadTotal,
			&row.VecesVendido, &row.IngresosTotales); err != nil {
			return nil, fmt.Errorf("reportes.ProductosMasVendidos scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TendenciasVentas agrupa ventas y compras por día calendario en [inicio, fin],
// de más reciente a más antigua. Los días sin movimiento no aparecen.
func (r *ReporteRepo) TendenciasVentas(ctx context.Context, inicio, fin time.Time) ([]entity.MetricaDiaria, error) {
	const query = `
	WITH ventas_dia AS (
	    SELECT fecha_venta::date AS fecha,
	           SUM(precio_total) AS total_ventas,
	           SUM(ganancia)     AS ganancia_total,
	           COUNT(*)          AS numero_ventas
	    FROM ventas
	    WHERE fecha_venta BETWEEN $1 AND $2
	    GROUP BY 1
	), compras_dia AS (
	    SELECT fecha_compra::date AS fecha,
	           SUM(costo_total)   AS total_compras
	    FROM compras
	    WHERE fecha_compra BETWEEN $1 AND $2
	    GROUP BY 1
	)
	SELECT fecha,
	       COALESCE(v.total_ventas, 0),
	       COALESCE(c.total_compras, 0),
	       COALESCE(v.ganancia_total, 0),
	       COALESCE(v.numero_ventas, 0)
	FROM ventas_dia v
	FULL OUTER JOIN compras_dia c USING (fecha)
	ORDER BY fecha DESC`

	rows, err := r.pool.Query(ctx, query, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("reportes.TendenciasVentas: %w", err)
	}
	defer rows.Close()

	var results []entity.MetricaDiaria
	for rows.Next() {
		var row entity.MetricaDiaria
		if err := rows.Scan(&row.Fecha, &row.TotalVentas, &row.TotalCompras,
			&row.GananciaTotal, &row.NumeroVentas); err != nil {
			return nil, fmt.Errorf("reportes.TendenciasVentas scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RentabilidadProductos cruza ventas y compras acumuladas por producto.
// Margen y ROI se calculan aquí; con denominador cero quedan en 0.
func (r *ReporteRepo) RentabilidadProductos(ctx context.Context, limite int) ([]entity.RentabilidadProducto, error) {
	const query = `
	WITH vendido AS (
	    SELECT producto_id,
	           MAX(nombre_producto) AS nombre_producto,
	           SUM(precio_total)    AS total_vendido
	    FROM ventas
	    GROUP BY producto_id
	), comprado AS (
	    SELECT producto_id,
	           MAX(nombre_producto) AS nombre_producto,
	           SUM(costo_total)     AS total_comprado
	    FROM compras
	    GROUP BY producto_id
	)
	SELECT producto_id,
	       COALESCE(v.nombre_producto, c.nombre_producto) AS nombre_producto,
	       COALESCE(v.total_vendido, 0)                   AS total_vendido,
	       COALESCE(c.total_comprado, 0)                  AS total_comprado
	FROM vendido v
	FULL OUTER JOIN comprado c USING (producto_id)
	ORDER BY COALESCE(v.total_vendido, 0) - COALESCE(c.total_comprado, 0) DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limite)
	if err != nil {
		return nil, fmt.Errorf("reportes.RentabilidadProductos: %w", err)
	}
	defer rows.Close()

	var results []entity.RentabilidadProducto
	for rows.Next() {
		var row entity.RentabilidadProducto
		if err := rows.Scan(&row.ProductoID, &row.NombreProducto,
			&row.TotalVendido, &row.TotalComprado); err != nil {
			return nil, fmt.Errorf("reportes.RentabilidadProductos scan: %w", err)
		}
		row.GananciaNeta = row.TotalVendido.Sub(row.TotalComprado)
		if !row.TotalVendido.IsZero() {
			row.MargenPorcentaje = row.GananciaNeta.Div(row.TotalVendido).Mul(cien)
		}
		if !row.TotalComprado.IsZero() {
			row.ROIPorcentaje = row.GananciaNeta.Div(row.TotalComprado).Mul(cien)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProductosBajoUmbral lista los productos con cantidad <= umbral, los más
// escasos primero.
func (r *ReporteRepo) ProductosBajoUmbral(ctx context.Context, umbral int64) ([]*entity.Producto, error) {
	const query = `
	SELECT id, nombre, tipo, cantidad, precio, created_at, updated_at
	FROM productos WHERE cantidad <= $1 ORDER BY cantidad, nombre`

	rows, err := r.pool.Query(ctx, query, umbral)
	if err != nil {
		return nil, fmt.Errorf("reportes.ProductosBajoUmbral: %w", err)
	}
	defer rows.Close()

	var results []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Cantidad, &p.Precio,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("reportes.ProductosBajoUmbral scan: %w", err)
		}
		results = append(results, &p)
	}
	return results, rows.Err()
}

// TotalesFinancieros agrega ventas, compras, ganancias y valor de inventario
// en una sola consulta de subqueries escalares.
func (r *ReporteRepo) TotalesFinancieros(ctx context.Context) (*entity.TotalesFinancieros, error) {
	const query = `
	SELECT
	    (SELECT COALESCE(SUM(precio_total), 0)      FROM ventas)    AS total_ventas,
	    (SELECT COALESCE(SUM(costo_total), 0)       FROM compras)   AS total_compras,
	    (SELECT COALESCE(SUM(ganancia), 0)          FROM ventas)    AS total_ganancias,
	    (SELECT COALESCE(SUM(cantidad * precio), 0) FROM productos) AS valor_inventario,
	    (SELECT COUNT(*) FROM productos) AS numero_productos,
	    (SELECT COUNT(*) FROM ventas)    AS numero_ventas,
	    (SELECT COUNT(*) FROM compras)   AS numero_compras`

	var t entity.TotalesFinancieros
	err := r.pool.QueryRow(ctx, query).Scan(
		&t.TotalVentas, &t.TotalCompras, &t.TotalGanancias, &t.ValorInventario,
		&t.NumeroProductos, &t.NumeroVentas, &t.NumeroCompras,
	)
	if err != nil {
		return nil, fmt.Errorf("reportes.TotalesFinancieros: %w", err)
	}
	return &t, nil
}

func (r *ReporteRepo) contar(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("reportes.contar: %w", err)
	}
	return n, nil
}
