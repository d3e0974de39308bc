package client

import (
	"context"
	"net/http"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// Ventas expone las operaciones de ventas.
type Ventas struct {
	c *Client
}

// NewVentas construye el servicio sobre el cliente.
func NewVentas(c *Client) *Ventas {
	return &Ventas{c: c}
}

// Listar trae todas las ventas registradas.
func (s *Ventas) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	var out []dto.VentaResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/ventas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListarHoy trae las ventas del día calendario actual.
func (s *Ventas) ListarHoy(ctx context.Context) ([]dto.VentaResponse, error) {
	var out []dto.VentaResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/ventas/hoy", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener trae una venta por ID.
func (s *Ventas) Obtener(ctx context.Context, id string) (*dto.VentaResponse, error) {
	var out dto.VentaResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/ventas/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crear registra una venta. El backend descuenta stock, así que al tener
// éxito se publican venta creada y cambio de inventario.
func (s *Ventas) Crear(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	var out dto.VentaResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/ventas", in, &out); err != nil {
		return nil, err
	}
	s.c.bus.Publicar(EventoVentaCreada, out.ID)
	s.c.bus.Publicar(EventoInventarioActualizado, out.ProductoID)
	return &out, nil
}

// Actualizar edita una venta; el backend reajusta stock si cambia producto o cantidad.
func (s *Ventas) Actualizar(ctx context.Context, id string, in dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	var out dto.VentaResponse
	if err := s.c.do(ctx, http.MethodPut, "/api/ventas/"+id, in, &out); err != nil {
		return nil, err
	}
	s.c.bus.Publicar(EventoInventarioActualizado, out.ProductoID)
	return &out, nil
}

// Ticket descarga el ticket PDF de una venta.
func (s *Ventas) Ticket(ctx context.Context, id string) ([]byte, error) {
	return s.c.descargar(ctx, "/api/ventas/"+id+"/ticket")
}

// Eliminar borra una venta; el backend restaura el stock.
func (s *Ventas) Eliminar(ctx context.Context, id string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/api/ventas/"+id, nil, nil); err != nil {
		return err
	}
	s.c.bus.Publicar(EventoInventarioActualizado, nil)
	return nil
}
