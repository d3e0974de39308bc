package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
// La columna nombre_normalizado guarda el nombre en forma canónica para las
// búsquedas sin mayúsculas ni acentos.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, nombre_normalizado, tipo, cantidad, precio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, domain.NormalizarNombre(producto.Nombre),
		producto.Tipo, producto.Cantidad, producto.Precio, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, tipo, cantidad, precio, created_at, updated_at
		FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNombre obtiene un producto por nombre, sin distinguir mayúsculas ni acentos.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, tipo, cantidad, precio, created_at, updated_at
		FROM productos WHERE nombre_normalizado = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, domain.NormalizarNombre(nombre)))
}

// List lista todos los productos ordenados por nombre.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `
		SELECT id, nombre, tipo, cantidad, precio, created_at, updated_at
		FROM productos ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Cantidad, &p.Precio, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre, tipo, cantidad y precio de un producto.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, nombre_normalizado = $3, tipo = $4, cantidad = $5, precio = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, domain.NormalizarNombre(producto.Nombre),
		producto.Tipo, producto.Cantidad, producto.Precio, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// IncrementarCantidad ajusta el stock en delta. Para deltas negativos el
// UPDATE es condicional: solo aplica si el stock disponible cubre la resta,
// de modo que dos ventas concurrentes no puedan dejar cantidad negativa.
func (r *ProductoRepo) IncrementarCantidad(id string, delta int64) error {
	query := `
		UPDATE productos SET cantidad = cantidad + $2, updated_at = now()
		WHERE id = $1 AND cantidad + $2 >= 0`
	cmd, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("incrementar cantidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		existe, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existe == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// ActualizarPrecio fija solo el precio (usado al registrar compras con nuevo costo).
func (r *ProductoRepo) ActualizarPrecio(id string, precio decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET precio = $2, updated_at = now() WHERE id = $1`,
		id, precio,
	)
	if err != nil {
		return fmt.Errorf("actualizar precio: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Cantidad, &p.Precio, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}
