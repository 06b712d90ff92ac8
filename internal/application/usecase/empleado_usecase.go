package usecase

import (
	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/domain/entity"
	"github.com/polizas/polizas-api/internal/domain/repository"
)

// EmpleadoUseCase CRUD de empleados. Sin reglas cruzadas: la integridad con
// pólizas se valida del lado de pólizas al leerlas.
type EmpleadoUseCase struct {
	repo repository.EmpleadoRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo}
}

// ListAll lista todos los empleados.
func (uc *EmpleadoUseCase) ListAll() ([]dto.EmpleadoResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEmpleadoResponse(e))
	}
	return items, nil
}

// GetByID obtiene un empleado. Devuelve (nil, nil) si no existe.
func (uc *EmpleadoUseCase) GetByID(id int64) (*dto.EmpleadoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	out := toEmpleadoResponse(e)
	return &out, nil
}

// Create registra un nuevo empleado con el ID provisto externamente.
func (uc *EmpleadoUseCase) Create(in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e := &entity.Empleado{
		IDEmpleado: in.IDEmpleado,
		Nombre:     in.Nombre,
		Apellido:   in.Apellido,
		Puesto:     in.Puesto,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	out := toEmpleadoResponse(e)
	return &out, nil
}

// Update reemplaza los datos de un empleado existente. Devuelve (nil, nil) si
// no existe.
func (uc *EmpleadoUseCase) Update(id int64, in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	e := &entity.Empleado{
		IDEmpleado: id,
		Nombre:     in.Nombre,
		Apellido:   in.Apellido,
		Puesto:     in.Puesto,
	}
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	out := toEmpleadoResponse(e)
	return &out, nil
}

// Delete elimina un empleado. Devuelve found=false si no existía.
func (uc *EmpleadoUseCase) Delete(id int64) (bool, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

func toEmpleadoResponse(e *entity.Empleado) dto.EmpleadoResponse {
	return dto.EmpleadoResponse{
		IDEmpleado: e.IDEmpleado,
		Nombre:     e.Nombre,
		Apellido:   e.Apellido,
		Puesto:     e.Puesto,
	}
}
