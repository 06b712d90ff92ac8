package repository

import "github.com/polizas/polizas-api/internal/domain/entity"

// PolizaFilter filtros opcionales del listado paginado de pólizas.
// Un puntero nil significa "sin filtro en esa dimensión"; los filtros
// presentes se combinan con AND.
type PolizaFilter struct {
	EmpleadoGenero *int64
	SKU            *int64
}

// PolizaRepository define el puerto de persistencia para Poliza (DIP).
// GetByID devuelve (nil, nil) si la póliza no existe.
type PolizaRepository interface {
	Create(p *entity.Poliza) error
	GetByID(id int64) (*entity.Poliza, error)
	Update(p *entity.Poliza) error
	Delete(id int64) error
	ListAll() ([]*entity.Poliza, error)
	List(f PolizaFilter, sortBy string, desc bool, limit, offset int) ([]*entity.Poliza, error)
	Count(f PolizaFilter) (int64, error)
}
