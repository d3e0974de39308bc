package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sn4yber/menchap-app-api/internal/application/usecase"
)

// FinanzasHandler maneja las peticiones HTTP del resumen financiero (protegido).
type FinanzasHandler struct {
	uc *usecase.FinanzasUseCase
}

// NewFinanzasHandler construye el handler.
func NewFinanzasHandler(uc *usecase.FinanzasUseCase) *FinanzasHandler {
	return &FinanzasHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen financiero global (ventas, compras, ganancias, inventario)
// @Tags         finanzas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenFinancieroResponse
// @Router       /api/finanzas/resumen [get]
func (h *FinanzasHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Conteos globales de productos, ventas y compras
// @Tags         finanzas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasFinancierasResponse
// @Router       /api/finanzas/estadisticas [get]
func (h *FinanzasHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
