package repository

import "github.com/polizas/polizas-api/internal/domain/entity"

// EmpleadoRepository define el puerto de persistencia para Empleado (DIP).
// Los Get devuelven (nil, nil) si el registro no existe.
type EmpleadoRepository interface {
	Create(e *entity.Empleado) error
	GetByID(id int64) (*entity.Empleado, error)
	Update(e *entity.Empleado) error
	Delete(id int64) error
	ListAll() ([]*entity.Empleado, error)
}
