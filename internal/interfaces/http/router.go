package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sn4yber/menchap-app-api/internal/application/auth"
	"github.com/sn4yber/menchap-app-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventarioUC *usecase.InventarioUseCase
	VentasUC     *usecase.VentasUseCase
	ComprasUC    *usecase.ComprasUseCase
	ReportesUC   *usecase.ReportesUseCase
	FinanzasUC   *usecase.FinanzasUseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido, solo ADMIN)
	protected.Post("/usuarios", RequireAdmin(), authHandler.CrearUsuario)

	// Inventario (protegido)
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/", inventarioHandler.List)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Put("/:id", inventarioHandler.Update)
	inventario.Delete("/:id", inventarioHandler.Delete)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	ventasHandler := NewVentasHandler(deps.VentasUC)
	ventas.Get("/", ventasHandler.List)
	ventas.Get("/hoy", ventasHandler.ListHoy)
	ventas.Get("/:id", ventasHandler.GetByID)
	ventas.Get("/:id/ticket", ventasHandler.Ticket)
	ventas.Post("/", ventasHandler.Create)
	ventas.Put("/:id", ventasHandler.Update)
	ventas.Delete("/:id", ventasHandler.Delete)

	// Compras (protegido)
	compras := protected.Group("/compras")
	comprasHandler := NewComprasHandler(deps.ComprasUC)
	compras.Get("/", comprasHandler.List)
	compras.Get("/:id", comprasHandler.GetByID)
	compras.Post("/", comprasHandler.Create)
	compras.Put("/:id", comprasHandler.Update)
	compras.Delete("/:id", comprasHandler.Delete)

	// Reportes (protegido)
	reportes := protected.Group("/reportes")
	reportesHandler := NewReportesHandler(deps.ReportesUC)
	reportes.Get("/dashboard-completo", reportesHandler.DashboardCompleto)
	reportes.Get("/ventas", reportesHandler.ReporteVentas)
	reportes.Get("/ventas/productos-mas-vendidos", reportesHandler.MasVendidos)
	reportes.Get("/tendencias/ventas", reportesHandler.Tendencias)
	reportes.Get("/rentabilidad/productos", reportesHandler.Rentabilidad)
	reportes.Get("/compras", reportesHandler.ReporteCompras)

	// Finanzas (protegido)
	finanzas := protected.Group("/finanzas")
	finanzasHandler := NewFinanzasHandler(deps.FinanzasUC)
	finanzas.Get("/resumen", finanzasHandler.Resumen)
	finanzas.Get("/estadisticas", finanzasHandler.Estadisticas)
}
