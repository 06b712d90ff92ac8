package poliza

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/domain"
	"github.com/polizas/polizas-api/internal/domain/entity"
	"github.com/polizas/polizas-api/internal/domain/repository"
	"github.com/polizas/polizas-api/pkg/logger"
)

// UseCase ciclo de vida de pólizas: crear/actualizar/eliminar acoplados
// transaccionalmente a la mutación de stock en inventario, con bloqueo de
// fila (SELECT FOR UPDATE) y Commit/Rollback vía TxRunner.
//
// Es la única autoridad sobre la regla "retirar stock se valida contra el
// inventario y se refleja en él, de forma reversible".
type UseCase struct {
	txRunner       TxRunner
	polizaRepo     repository.PolizaRepository
	empleadoRepo   repository.EmpleadoRepository
	inventarioRepo repository.InventarioRepository
	log            *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	polizaRepo repository.PolizaRepository,
	empleadoRepo repository.EmpleadoRepository,
	inventarioRepo repository.InventarioRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		polizaRepo:     polizaRepo,
		empleadoRepo:   empleadoRepo,
		inventarioRepo: inventarioRepo,
		log:            log,
	}
}

// ListAll devuelve todas las pólizas como vistas compuestas (póliza + empleado
// + artículo). Si alguna póliza referencia un empleado o artículo que ya no
// existe, toda la operación falla con NotFound: una FK huérfana es un estado
// inválido, no una fila a omitir.
func (uc *UseCase) ListAll(ctx context.Context) ([]dto.PolizaResponse, error) {
	polizas, err := uc.polizaRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.compose(polizas)
}

// ListPaged devuelve una página de vistas compuestas con filtros opcionales
// por empleado y SKU. SortDir distinto de "desc" (sin distinguir mayúsculas)
// ordena ascendente.
func (uc *UseCase) ListPaged(ctx context.Context, q dto.PolizaPageQuery) (*dto.PolizaPage, error) {
	if q.Size <= 0 {
		q.Size = 10
	}
	if q.Page < 0 {
		q.Page = 0
	}
	desc := strings.EqualFold(q.SortDir, "desc")
	filter := repository.PolizaFilter{EmpleadoGenero: q.EmpleadoID, SKU: q.SKU}

	total, err := uc.polizaRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	polizas, err := uc.polizaRepo.List(filter, q.SortBy, desc, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, err
	}
	content, err := uc.compose(polizas)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return &dto.PolizaPage{
		Content:     content,
		CurrentPage: q.Page,
		TotalItems:  total,
		TotalPages:  totalPages,
	}, nil
}

// GetByID devuelve la vista compuesta de una póliza. Falla con NotFound si la
// póliza no existe, o si su empleado o artículo fueron eliminados por fuera.
func (uc *UseCase) GetByID(ctx context.Context, idPoliza int64) (*dto.PolizaResponse, error) {
	p, err := uc.polizaRepo.GetByID(idPoliza)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errPolizaNotFound(idPoliza)
	}
	return uc.buildResponse(p)
}

// Create crea una póliza descontando stock, todo dentro de una transacción:
// valida empleado y artículo, bloquea la fila de inventario, rechaza con
// InsufficientStock si la cantidad supera la existencia, descuenta y persiste
// la póliza con fecha del servidor. Ningún paso deja efecto parcial.
func (uc *UseCase) Create(ctx context.Context, in dto.PolizaRequest) (*dto.PolizaResponse, error) {
	if err := validarRequest(in, uc.log); err != nil {
		return nil, err
	}

	var out *dto.PolizaResponse
	err := uc.txRunner.Run(ctx, func(
		polizaRepo repository.PolizaRepository,
		empleadoRepo repository.EmpleadoRepository,
		inventarioRepo repository.InventarioRepository,
	) error {
		emp, err := empleadoRepo.GetByID(in.EmpleadoGenero)
		if err != nil {
			return err
		}
		if emp == nil {
			return errEmpleadoNotFound(in.EmpleadoGenero)
		}

		// Bloquea la fila del artículo: dos create simultáneos sobre el mismo
		// SKU se serializan aquí y la validación de existencia queda cerrada.
		art, err := inventarioRepo.GetBySKUForUpdate(in.SKU)
		if err != nil {
			return err
		}
		if art == nil {
			return errArticuloNotFound(in.SKU)
		}
		if art.Cantidad < in.Cantidad {
			return domain.NewError(domain.ErrInsufficientStock, fmt.Sprintf(
				"No hay suficiente cantidad en inventario para el artículo con SKU: %d", in.SKU))
		}

		art.Cantidad -= in.Cantidad
		if err := inventarioRepo.Update(art); err != nil {
			return err
		}

		p := &entity.Poliza{
			IDPoliza:       in.IDPoliza,
			EmpleadoGenero: in.EmpleadoGenero,
			SKU:            in.SKU,
			Cantidad:       in.Cantidad,
			Fecha:          time.Now(),
		}
		if err := polizaRepo.Create(p); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.NewError(domain.ErrDuplicate, fmt.Sprintf("Ya existe una póliza con ID: %d", in.IDPoliza))
			}
			return err
		}

		out = &dto.PolizaResponse{
			Poliza:          dto.PolizaItem{IDPoliza: p.IDPoliza, Cantidad: p.Cantidad},
			Empleado:        dto.EmpleadoNombre{Nombre: emp.Nombre, Apellido: emp.Apellido},
			DetalleArticulo: dto.DetalleArticulo{SKU: art.SKU, Nombre: art.Nombre},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("id_poliza", in.IDPoliza).
		Int64("empleado", in.EmpleadoGenero).
		Int64("sku", in.SKU).
		Int("cantidad", in.Cantidad).
		Msg("póliza creada")
	return out, nil
}

// Update reasigna el empleado de una póliza existente. SKU y cantidad del
// cuerpo se aceptan pero no se aplican: la cantidad ya retirada no es
// revisable sin un ajuste compensatorio de inventario que este contrato no
// contempla.
func (uc *UseCase) Update(ctx context.Context, idPoliza int64, in dto.PolizaRequest) (*dto.MensajeIDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		polizaRepo repository.PolizaRepository,
		empleadoRepo repository.EmpleadoRepository,
		_ repository.InventarioRepository,
	) error {
		p, err := polizaRepo.GetByID(idPoliza)
		if err != nil {
			return err
		}
		if p == nil {
			return errPolizaNotFound(idPoliza)
		}

		emp, err := empleadoRepo.GetByID(in.EmpleadoGenero)
		if err != nil {
			return err
		}
		if emp == nil {
			return errEmpleadoNotFound(in.EmpleadoGenero)
		}

		p.EmpleadoGenero = in.EmpleadoGenero
		return polizaRepo.Update(p)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("id_poliza", idPoliza).
		Int64("empleado", in.EmpleadoGenero).
		Msg("póliza actualizada")
	return &dto.MensajeIDResponse{
		Mensaje: dto.MensajeID{IDMensaje: fmt.Sprintf("Se actualizó correctamente la poliza %d", idPoliza)},
	}, nil
}

// Delete elimina una póliza devolviendo su cantidad al inventario, dentro de
// una transacción. El artículo puede haber sido borrado por fuera desde la
// creación; en ese caso falla con NotFound sin tocar nada.
func (uc *UseCase) Delete(ctx context.Context, idPoliza int64) (*dto.MensajeIDResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		polizaRepo repository.PolizaRepository,
		_ repository.EmpleadoRepository,
		inventarioRepo repository.InventarioRepository,
	) error {
		p, err := polizaRepo.GetByID(idPoliza)
		if err != nil {
			return err
		}
		if p == nil {
			return errPolizaNotFound(idPoliza)
		}

		art, err := inventarioRepo.GetBySKUForUpdate(p.SKU)
		if err != nil {
			return err
		}
		if art == nil {
			return errArticuloNotFound(p.SKU)
		}

		art.Cantidad += p.Cantidad
		if err := inventarioRepo.Update(art); err != nil {
			return err
		}
		return polizaRepo.Delete(idPoliza)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("id_poliza", idPoliza).Msg("póliza eliminada")
	return &dto.MensajeIDResponse{
		Mensaje: dto.MensajeID{IDMensaje: fmt.Sprintf("Se eliminó correctamente la poliza %d", idPoliza)},
	}, nil
}

// compose arma las vistas compuestas de un conjunto de pólizas.
func (uc *UseCase) compose(polizas []*entity.Poliza) ([]dto.PolizaResponse, error) {
	result := make([]dto.PolizaResponse, 0, len(polizas))
	for _, p := range polizas {
		view, err := uc.buildResponse(p)
		if err != nil {
			return nil, err
		}
		result = append(result, *view)
	}
	return result, nil
}

// buildResponse resuelve las FKs de una póliza y arma la vista compuesta.
func (uc *UseCase) buildResponse(p *entity.Poliza) (*dto.PolizaResponse, error) {
	emp, err := uc.empleadoRepo.GetByID(p.EmpleadoGenero)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, errEmpleadoNotFound(p.EmpleadoGenero)
	}
	art, err := uc.inventarioRepo.GetBySKU(p.SKU)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, errArticuloNotFound(p.SKU)
	}
	return &dto.PolizaResponse{
		Poliza:          dto.PolizaItem{IDPoliza: p.IDPoliza, Cantidad: p.Cantidad},
		Empleado:        dto.EmpleadoNombre{Nombre: emp.Nombre, Apellido: emp.Apellido},
		DetalleArticulo: dto.DetalleArticulo{SKU: art.SKU, Nombre: art.Nombre},
	}, nil
}

// validarRequest valida el cuerpo de creación. El detalle de campos se
// registra en el log; al cliente solo le llega el mensaje genérico.
func validarRequest(in dto.PolizaRequest, log *logger.Logger) error {
	if in.IDPoliza <= 0 || in.EmpleadoGenero <= 0 || in.SKU <= 0 || in.Cantidad <= 0 {
		log.Warn().
			Int64("id_poliza", in.IDPoliza).
			Int64("empleado", in.EmpleadoGenero).
			Int64("sku", in.SKU).
			Int("cantidad", in.Cantidad).
			Msg("cuerpo de póliza inválido")
		return domain.NewError(domain.ErrInvalidInput, "Error de validación en los datos proporcionados.")
	}
	return nil
}

func errPolizaNotFound(id int64) error {
	return domain.NewError(domain.ErrNotFound, fmt.Sprintf("Póliza no encontrada con ID: %d", id))
}

func errEmpleadoNotFound(id int64) error {
	return domain.NewError(domain.ErrNotFound, fmt.Sprintf("Empleado no encontrado con ID: %d", id))
}

func errArticuloNotFound(sku int64) error {
	return domain.NewError(domain.ErrNotFound, fmt.Sprintf("Artículo no encontrado con SKU: %d", sku))
}
