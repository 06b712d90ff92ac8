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

	_ "github.com/polizas/polizas-api/docs"
	"github.com/polizas/polizas-api/internal/application/poliza"
	"github.com/polizas/polizas-api/internal/application/usecase"
	"github.com/polizas/polizas-api/internal/infrastructure/postgres"
	httpRouter "github.com/polizas/polizas-api/internal/interfaces/http"
	"github.com/polizas/polizas-api/pkg/config"
	"github.com/polizas/polizas-api/pkg/logger"
)

// @title        Polizas API
// @version      1.0
// @description  API para la gestión de pólizas de retiro de inventario, empleados e inventario.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("esquema al día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	polizaRepo := postgres.NewPolizaRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	polizaUC := poliza.NewUseCase(txRunner, polizaRepo, empleadoRepo, inventarioRepo, log)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo)
	inventarioUC := usecase.NewInventarioUseCase(inventarioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Polizas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PolizaUC:     polizaUC,
		EmpleadoUC:   empleadoUC,
		InventarioUC: inventarioUC,
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
