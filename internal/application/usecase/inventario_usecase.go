package usecase

import (
	"strings"

	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/domain/entity"
	"github.com/polizas/polizas-api/internal/domain/repository"
)

// InventarioUseCase CRUD de artículos de inventario. La cantidad es editable
// directamente por esta vía; el descuento/restauración por pólizas vive en el
// caso de uso de pólizas y comparte la misma fila bajo transacción.
type InventarioUseCase struct {
	repo repository.InventarioRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(repo repository.InventarioRepository) *InventarioUseCase {
	return &InventarioUseCase{repo: repo}
}

// ListAll lista todo el inventario.
func (uc *InventarioUseCase) ListAll() ([]dto.ArticuloResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(list))
	for _, a := range list {
		items = append(items, toArticuloResponse(a))
	}
	return items, nil
}

// ListPaged devuelve una página de artículos, con filtro opcional por nombre
// (coincidencia parcial sin distinguir mayúsculas).
func (uc *InventarioUseCase) ListPaged(q dto.InventarioPageQuery) (*dto.InventarioPage, error) {
	if q.Size <= 0 {
		q.Size = 10
	}
	if q.Page < 0 {
		q.Page = 0
	}
	desc := strings.EqualFold(q.SortDir, "desc")

	total, err := uc.repo.Count(q.Nombre)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(q.Nombre, q.SortBy, desc, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ArticuloResponse, 0, len(list))
	for _, a := range list {
		items = append(items, toArticuloResponse(a))
	}
	return &dto.InventarioPage{
		Content:     items,
		CurrentPage: q.Page,
		TotalItems:  total,
		TotalPages:  int((total + int64(q.Size) - 1) / int64(q.Size)),
	}, nil
}

// GetBySKU obtiene un artículo. Devuelve (nil, nil) si no existe.
func (uc *InventarioUseCase) GetBySKU(sku int64) (*dto.ArticuloResponse, error) {
	a, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	out := toArticuloResponse(a)
	return &out, nil
}

// Create registra un nuevo artículo con el SKU provisto externamente.
func (uc *InventarioUseCase) Create(in dto.ArticuloRequest) (*dto.ArticuloResponse, error) {
	a := &entity.Inventario{
		SKU:      in.SKU,
		Nombre:   in.Nombre,
		Cantidad: in.Cantidad,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	out := toArticuloResponse(a)
	return &out, nil
}

// Update reemplaza los datos de un artículo existente. Devuelve (nil, nil) si
// no existe.
func (uc *InventarioUseCase) Update(sku int64, in dto.ArticuloRequest) (*dto.ArticuloResponse, error) {
	existing, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	a := &entity.Inventario{
		SKU:      sku,
		Nombre:   in.Nombre,
		Cantidad: in.Cantidad,
	}
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	out := toArticuloResponse(a)
	return &out, nil
}

// Delete elimina un artículo. Devuelve found=false si no existía.
func (uc *InventarioUseCase) Delete(sku int64) (bool, error) {
	existing, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := uc.repo.Delete(sku); err != nil {
		return false, err
	}
	return true, nil
}

func toArticuloResponse(a *entity.Inventario) dto.ArticuloResponse {
	return dto.ArticuloResponse{
		SKU:      a.SKU,
		Nombre:   a.Nombre,
		Cantidad: a.Cantidad,
	}
}
