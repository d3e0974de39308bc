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

var _ repository.CompraRepository = (*CompraRepo)(nil)

const compraColumns = `id, producto_id, nombre_producto, cantidad, costo_unitario, costo_total,
		proveedor, metodo_pago, numero_factura, fecha_compra, observaciones`

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste una nueva compra.
func (r *CompraRepo) Create(compra *entity.Compra) error {
	query := `
		INSERT INTO compras (` + compraColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		compra.ID, compra.ProductoID, compra.NombreProducto, compra.Cantidad,
		compra.CostoUnitario, compra.CostoTotal, compra.Proveedor, compra.MetodoPago,
		compra.NumeroFactura, compra.FechaCompra, compra.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *CompraRepo) GetByID(id string) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE id = $1`
	var c entity.Compra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ProductoID, &c.NombreProducto, &c.Cantidad,
		&c.CostoUnitario, &c.CostoTotal, &c.Proveedor, &c.MetodoPago,
		&c.NumeroFactura, &c.FechaCompra, &c.Observaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

// List lista todas las compras, de más reciente a más antigua.
func (r *CompraRepo) List() ([]*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras ORDER BY fecha_compra DESC`
	return r.queryList(query)
}

// ListBetween lista compras con fecha_compra en [inicio, fin], de más reciente a más antigua.
func (r *CompraRepo) ListBetween(inicio, fin time.Time) ([]*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras
		WHERE fecha_compra BETWEEN $1 AND $2 ORDER BY fecha_compra DESC`
	return r.queryList(query, inicio, fin)
}

// Update actualiza una compra existente.
func (r *CompraRepo) Update(compra *entity.Compra) error {
	query := `
		UPDATE compras SET proveedor = $2, metodo_pago = $3, numero_factura = $4,
			fecha_compra = $5, observaciones = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		compra.ID, compra.Proveedor, compra.MetodoPago, compra.NumeroFactura,
		compra.FechaCompra, compra.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update compra: %w", err)
	}
	return nil
}

// Delete elimina una compra por ID.
func (r *CompraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM compras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete compra: %w", err)
	}
	return nil
}

func (r *CompraRepo) queryList(query string, args ...any) ([]*entity.Compra, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.ProductoID, &c.NombreProducto, &c.Cantidad,
			&c.CostoUnitario, &c.CostoTotal, &c.Proveedor, &c.MetodoPago,
			&c.NumeroFactura, &c.FechaCompra, &c.Observaciones); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
