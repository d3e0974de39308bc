package client

import (
	"context"
	"net/http"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// Finanzas expone el resumen financiero global del negocio.
type Finanzas struct {
	c *Client
}

// NewFinanzas construye el servicio sobre el cliente.
func NewFinanzas(c *Client) *Finanzas {
	return &Finanzas{c: c}
}

// Resumen trae los totales históricos de ventas, compras, ganancias y el
// valor actual del inventario.
func (s *Finanzas) Resumen(ctx context.Context) (*dto.ResumenFinancieroResponse, error) {
	var out dto.ResumenFinancieroResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/finanzas/resumen", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Estadisticas trae los conteos globales de productos, ventas y compras.
func (s *Finanzas) Estadisticas(ctx context.Context) (*dto.EstadisticasFinancierasResponse, error) {
	var out dto.EstadisticasFinancierasResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/finanzas/estadisticas", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
