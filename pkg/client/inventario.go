package client

import (
	"context"
	"net/http"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// Inventario expone las operaciones de productos del inventario.
type Inventario struct {
	c *Client
}

// NewInventario construye el servicio sobre el cliente.
func NewInventario(c *Client) *Inventario {
	return &Inventario{c: c}
}

// Listar trae todos los productos. Es la lectura que alimenta dashboards,
// así que reintenta con backoff ante fallos transitorios.
func (s *Inventario) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	var out []dto.ProductoResponse
	err := s.c.reintento.Ejecutar(ctx, func() error {
		out = nil
		return s.c.do(ctx, http.MethodGet, "/api/inventario", nil, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Crear crea un producto y publica el cambio de inventario.
func (s *Inventario) Crear(ctx context.Context, in dto.ProductoFormRequest) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/inventario", in, &out); err != nil {
		return nil, err
	}
	s.c.bus.Publicar(EventoInventarioActualizado, out.ID)
	return &out, nil
}

// Actualizar edita un producto y publica el cambio de inventario.
func (s *Inventario) Actualizar(ctx context.Context, id string, in dto.ProductoFormRequest) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	if err := s.c.do(ctx, http.MethodPut, "/api/inventario/"+id, in, &out); err != nil {
		return nil, err
	}
	s.c.bus.Publicar(EventoInventarioActualizado, out.ID)
	return &out, nil
}

// Eliminar borra un producto y publica el cambio de inventario.
func (s *Inventario) Eliminar(ctx context.Context, id string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/api/inventario/"+id, nil, nil); err != nil {
		return err
	}
	s.c.bus.Publicar(EventoInventarioActualizado, id)
	return nil
}
