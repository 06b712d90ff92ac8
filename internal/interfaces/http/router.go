package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polizas/polizas-api/internal/application/poliza"
	"github.com/polizas/polizas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PolizaUC     *poliza.UseCase
	EmpleadoUC   *usecase.EmpleadoUseCase
	InventarioUC *usecase.InventarioUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Pólizas. /paginated va antes que /:idPoliza para que no lo capture el
	// parámetro de ruta.
	polizas := app.Group("/polizas")
	polizaHandler := NewPolizaHandler(deps.PolizaUC)
	polizas.Get("/", polizaHandler.List)
	polizas.Get("/paginated", polizaHandler.ListPaged)
	polizas.Get("/:idPoliza", polizaHandler.GetByID)
	polizas.Post("/", polizaHandler.Create)
	polizas.Put("/:idPoliza", polizaHandler.Update)
	polizas.Delete("/:idPoliza", polizaHandler.Delete)

	// Empleados
	empleados := app.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/:idEmpleado", empleadoHandler.GetByID)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Put("/:idEmpleado", empleadoHandler.Update)
	empleados.Delete("/:idEmpleado", empleadoHandler.Delete)

	// Inventario
	inventario := app.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/", inventarioHandler.List)
	inventario.Get("/paginated", inventarioHandler.ListPaged)
	inventario.Get("/:sku", inventarioHandler.GetBySKU)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Put("/:sku", inventarioHandler.Update)
	inventario.Delete("/:sku", inventarioHandler.Delete)
}
