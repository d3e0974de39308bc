package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

// InventarioUseCase casos de uso CRUD para productos del inventario.
// El stock también lo mutan ventas y compras; aquí solo ediciones directas.
type InventarioUseCase struct {
	repo repository.ProductoRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(repo repository.ProductoRepository) *InventarioUseCase {
	return &InventarioUseCase{repo: repo}
}

// Listar devuelve todos los productos del inventario.
func (uc *InventarioUseCase) Listar() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Crear crea un nuevo producto.
func (uc *InventarioUseCase) Crear(in dto.ProductoFormRequest) (*dto.ProductoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		Cantidad:  in.Cantidad,
		Precio:    in.Precio,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Actualizar reemplaza nombre, tipo, cantidad y precio de un producto.
func (uc *InventarioUseCase) Actualizar(id string, in dto.ProductoFormRequest) (*dto.ProductoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	producto.Nombre = in.Nombre
	producto.Tipo = in.Tipo
	producto.Cantidad = in.Cantidad
	producto.Precio = in.Precio
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Eliminar borra un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *InventarioUseCase) Eliminar(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:         p.ID,
		Nombre:     p.Nombre,
		Tipo:       p.Tipo,
		Cantidad:   p.Cantidad,
		Precio:     p.Precio,
		ValorTotal: p.ValorTotal(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
