// seed puebla la base con datos de ejemplo (empleados y artículos de
// inventario) para desarrollo local. Idempotente: las filas ya existentes se
// dejan como están.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/polizas/polizas-api/internal/infrastructure/postgres"
	"github.com/polizas/polizas-api/pkg/config"
	"github.com/polizas/polizas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("cargar configuración: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empleados := [][]any{
		{int64(1), "María", "García", "Analista"},
		{int64(2), "Carlos", "Rodríguez", "Bodeguero"},
		{int64(3), "Ana", "Martínez", "Supervisora"},
	}
	for _, e := range empleados {
		_, err := pool.Exec(ctx, `
			INSERT INTO empleado (id_empleado, nombre, apellido, puesto)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id_empleado) DO NOTHING`, e...)
		if err != nil {
			log.Fatal().Err(err).Msg("insertar empleado")
		}
	}

	articulos := [][]any{
		{int64(100), "Laptop", 5},
		{int64(200), "Monitor", 12},
		{int64(300), "Teclado", 30},
	}
	for _, a := range articulos {
		_, err := pool.Exec(ctx, `
			INSERT INTO inventario (sku, nombre, cantidad)
			VALUES ($1, $2, $3)
			ON CONFLICT (sku) DO NOTHING`, a...)
		if err != nil {
			log.Fatal().Err(err).Msg("insertar artículo")
		}
	}

	log.Info().
		Int("empleados", len(empleados)).
		Int("articulos", len(articulos)).
		Msg("datos de ejemplo cargados")
}
