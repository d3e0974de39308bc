package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/application/usecase"
)

// ReportesHandler maneja las peticiones HTTP de reportes y dashboard (protegido).
type ReportesHandler struct {
	uc *usecase.ReportesUseCase
}

// NewReportesHandler construye el handler.
func NewReportesHandler(uc *usecase.ReportesUseCase) *ReportesHandler {
	return &ReportesHandler{uc: uc}
}

// DashboardCompleto godoc
// @Summary      Dashboard consolidado (stats, ranking, alertas, tendencias, rentabilidad)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardCompletoResponse
// @Router       /api/reportes/dashboard-completo [get]
func (h *ReportesHandler) DashboardCompleto(c *fiber.Ctx) error {
	out, err := h.uc.DashboardCompleto(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ReporteVentas godoc
// @Summary      Ventas por período con totales
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fechaInicio  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        fechaFin     query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.ReporteVentasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas [get]
func (h *ReportesHandler) ReporteVentas(c *fiber.Ctx) error {
	inicio, fin, err := parseRangoFechas(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ReporteVentas(inicio, fin)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ReporteCompras godoc
// @Summary      Compras por período con totales
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fechaInicio  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        fechaFin     query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.ReporteComprasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/compras [get]
func (h *ReportesHandler) ReporteCompras(c *fiber.Ctx) error {
	inicio, fin, err := parseRangoFechas(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ReporteCompras(inicio, fin)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// MasVendidos godoc
// @Summary      Ranking de productos más vendidos
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "Filas del ranking"  default(10)
// @Success      200  {array}  dto.ProductoMasVendidoDTO
// @Router       /api/reportes/ventas/productos-mas-vendidos [get]
func (h *ReportesHandler) MasVendidos(c *fiber.Ctx) error {
	out, err := h.uc.MasVendidos(c.Context(), c.QueryInt("limite", 0))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Tendencias godoc
// @Summary      Serie diaria de ventas y compras
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Días hacia atrás"  default(30)
// @Success      200  {array}  dto.MetricaDiariaDTO
// @Router       /api/reportes/tendencias/ventas [get]
func (h *ReportesHandler) Tendencias(c *fiber.Ctx) error {
	out, err := h.uc.Tendencias(c.Context(), c.QueryInt("dias", 0))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Rentabilidad godoc
// @Summary      Margen y ROI acumulados por producto
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "Filas del reporte"  default(15)
// @Success      200  {array}  dto.RentabilidadProductoDTO
// @Router       /api/reportes/rentabilidad/productos [get]
func (h *ReportesHandler) Rentabilidad(c *fiber.Ctx) error {
	out, err := h.uc.Rentabilidad(c.Context(), c.QueryInt("limite", 0))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// parseRangoFechas lee fechaInicio y fechaFin (YYYY-MM-DD) de la query.
func parseRangoFechas(c *fiber.Ctx) (time.Time, time.Time, error) {
	inicio, err := time.ParseInLocation("2006-01-02", c.Query("fechaInicio"), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "fechaInicio inválida, formato YYYY-MM-DD")
	}
	fin, err := time.ParseInLocation("2006-01-02", c.Query("fechaFin"), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "fechaFin inválida, formato YYYY-MM-DD")
	}
	return inicio, fin, nil
}
