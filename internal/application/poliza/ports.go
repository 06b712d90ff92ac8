package poliza

import (
	"context"

	"github.com/polizas/polizas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del ciclo de vida de la
// póliza: o se aplican el movimiento de inventario y el registro de póliza
// juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		polizaRepo repository.PolizaRepository,
		empleadoRepo repository.EmpleadoRepository,
		inventarioRepo repository.InventarioRepository,
	) error) error
}
