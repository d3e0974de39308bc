package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sn4yber/menchap-app-api/internal/application/auth"
	"github.com/sn4yber/menchap-app-api/internal/application/usecase"
	infrapdf "github.com/sn4yber/menchap-app-api/internal/infrastructure/pdf"
	"github.com/sn4yber/menchap-app-api/internal/infrastructure/postgres"
	httpRouter "github.com/sn4yber/menchap-app-api/internal/interfaces/http"
	"github.com/sn4yber/menchap-app-api/pkg/config"
	"github.com/sn4yber/menchap-app-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ticketGenerator := infrapdf.NewMarotoTicketGenerator(cfg.App.Name)

	inventarioUC := usecase.NewInventarioUseCase(productoRepo)
	ventasUC := usecase.NewVentasUseCase(txRunner, ventaRepo, ticketGenerator)
	comprasUC := usecase.NewComprasUseCase(txRunner, compraRepo)
	reportesUC := usecase.NewReportesUseCase(reporteRepo, ventaRepo, compraRepo)
	finanzasUC := usecase.NewFinanzasUseCase(reporteRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventarioUC: inventarioUC,
		VentasUC:     ventasUC,
		ComprasUC:    comprasUC,
		ReportesUC:   reportesUC,
		FinanzasUC:   finanzasUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
