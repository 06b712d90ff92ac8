package repository

import "github.com/polizas/polizas-api/internal/domain/entity"

// InventarioRepository define el puerto de persistencia para Inventario (DIP).
// Los Get devuelven (nil, nil) si el artículo no existe.
type InventarioRepository interface {
	Create(a *entity.Inventario) error
	GetBySKU(sku int64) (*entity.Inventario, error)
	// GetBySKUForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido
	// dentro de una transacción.
	GetBySKUForUpdate(sku int64) (*entity.Inventario, error)
	Update(a *entity.Inventario) error
	Delete(sku int64) error
	ListAll() ([]*entity.Inventario, error)
	// List pagina el inventario; nombre vacío no filtra, si no filtra por
	// coincidencia parcial sin distinguir mayúsculas.
	List(nombre, sortBy string, desc bool, limit, offset int) ([]*entity.Inventario, error)
	Count(nombre string) (int64, error)
}
