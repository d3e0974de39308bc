package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// Reportes expone el dashboard consolidado y los reportes por período.
type Reportes struct {
	c *Client
}

// NewReportes construye el servicio sobre el cliente.
func NewReportes(c *Client) *Reportes {
	return &Reportes{c: c}
}

// DashboardCompleto trae stats, ranking, alertas, tendencias y rentabilidad
// en una sola llamada.
func (s *Reportes) DashboardCompleto(ctx context.Context) (*dto.DashboardCompletoResponse, error) {
	var out dto.DashboardCompletoResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/reportes/dashboard-completo", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VentasPorRango trae las ventas del período con totales.
func (s *Reportes) VentasPorRango(ctx context.Context, inicio, fin time.Time) (*dto.ReporteVentasResponse, error) {
	var out dto.ReporteVentasResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/reportes/ventas?"+rangoQuery(inicio, fin), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComprasPorRango trae las compras del período con totales.
func (s *Reportes) ComprasPorRango(ctx context.Context, inicio, fin time.Time) (*dto.ReporteComprasResponse, error) {
	var out dto.ReporteComprasResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/reportes/compras?"+rangoQuery(inicio, fin), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func rangoQuery(inicio, fin time.Time) string {
	q := url.Values{}
	q.Set("fechaInicio", inicio.Format("2006-01-02"))
	q.Set("fechaFin", fin.Format("2006-01-02"))
	return q.Encode()
}
