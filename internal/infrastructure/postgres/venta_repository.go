package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, producto_id, nombre_producto, cantidad, precio_unitario, precio_total,
		costo_unitario, ganancia, cliente, metodo_pago, fecha_venta, observaciones`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste una nueva venta.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (` + ventaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ProductoID, venta.NombreProducto, venta.Cantidad,
		venta.PrecioUnitario, venta.PrecioTotal, venta.CostoUnitario, venta.Ganancia,
		venta.Cliente, venta.MetodoPago, venta.FechaVenta, venta.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductoID, &v.NombreProducto, &v.Cantidad,
		&v.PrecioUnitario, &v.PrecioTotal, &v.CostoUnitario, &v.Ganancia,
		&v.Cliente, &v.MetodoPago, &v.FechaVenta, &v.Observaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// List lista todas las ventas, de más reciente a más antigua.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas ORDER BY fecha_venta DESC`
	return r.queryList(query)
}

// ListBetween lista ventas con fecha_venta en [inicio, fin], de más reciente a más antigua.
func (r *VentaRepo) ListBetween(inicio, fin time.Time) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas
		WHERE fecha_venta BETWEEN $1 AND $2 ORDER BY fecha_venta DESC`
	return r.queryList(query, inicio, fin)
}

// Update actualiza una venta existente.
func (r *VentaRepo) Update(venta *entity.Venta) error {
	query := `
		UPDATE ventas SET producto_id = $2, nombre_producto = $3, cantidad = $4,
			precio_unitario = $5, precio_total = $6, costo_unitario = $7, ganancia = $8,
			cliente = $9, metodo_pago = $10, fecha_venta = $11, observaciones = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ProductoID, venta.NombreProducto, venta.Cantidad,
		venta.PrecioUnitario, venta.PrecioTotal, venta.CostoUnitario, venta.Ganancia,
		venta.Cliente, venta.MetodoPago, venta.FechaVenta, venta.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *VentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) queryList(query string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ProductoID, &v.NombreProducto, &v.Cantidad,
			&v.PrecioUnitario, &v.PrecioTotal, &v.CostoUnitario, &v.Ganancia,
			&v.Cliente, &v.MetodoPago, &v.FechaVenta, &v.Observaciones); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
