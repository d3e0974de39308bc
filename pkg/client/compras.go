package client

import (
	"context"
	"net/http"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// Compras expone las operaciones de compras.
type Compras struct {
	c *Client
}

// NewCompras construye el servicio sobre el cliente.
func NewCompras(c *Client) *Compras {
	return &Compras{c: c}
}

// Listar trae todas las compras registradas.
func (s *Compras) Listar(ctx context.Context) ([]dto.CompraResponse, error) {
	var out []dto.CompraResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/compras", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener trae una compra por ID.
func (s *Compras) Obtener(ctx context.Context, id string) (*dto.CompraResponse, error) {
	var out dto.CompraResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/compras/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crear registra una compra. El backend suma stock (y puede crear el
// producto), así que al tener éxito se publican compra creada y cambio de
// inventario.
func (s *Compras) Crear(ctx context.Context, in dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	var out dto.CompraResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/compras", in, &out); err != nil {
		return nil, err
	}
	s.c.bus.Publicar(EventoCompraCreada, out.ID)
	s.c.bus.Publicar(EventoInventarioActualizado, out.ProductoID)
	return &out, nil
}

// Actualizar edita los datos administrativos de una compra (no toca stock).
func (s *Compras) Actualizar(ctx context.Context, id string, in dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	var out dto.CompraResponse
	if err := s.c.do(ctx, http.MethodPut, "/api/compras/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar borra una compra (el stock recibido no se revierte).
func (s *Compras) Eliminar(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/compras/"+id, nil, nil)
}
