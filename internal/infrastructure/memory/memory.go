// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Respeta el mismo contrato que la implementación postgres
// (Get devuelve nil,nil si no existe, Create falla con ErrDuplicate) y se usa
// en los tests de aplicación e interfaces.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/polizas/polizas-api/internal/domain"
	"github.com/polizas/polizas-api/internal/domain/entity"
	"github.com/polizas/polizas-api/internal/domain/repository"
)

// Store almacén compartido por los tres repositorios.
type Store struct {
	mu        sync.Mutex
	empleados map[int64]entity.Empleado
	articulos map[int64]entity.Inventario
	polizas   map[int64]entity.Poliza
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		empleados: make(map[int64]entity.Empleado),
		articulos: make(map[int64]entity.Inventario),
		polizas:   make(map[int64]entity.Poliza),
	}
}

// snapshot copia el estado completo, para poder revertirlo en el TxRunner.
func (s *Store) snapshot() (map[int64]entity.Empleado, map[int64]entity.Inventario, map[int64]entity.Poliza) {
	emp := make(map[int64]entity.Empleado, len(s.empleados))
	for k, v := range s.empleados {
		emp[k] = v
	}
	art := make(map[int64]entity.Inventario, len(s.articulos))
	for k, v := range s.articulos {
		art[k] = v
	}
	pol := make(map[int64]entity.Poliza, len(s.polizas))
	for k, v := range s.polizas {
		pol[k] = v
	}
	return emp, art, pol
}

// ──────────────────────────────────────────────────────────────────────────────
// EmpleadoRepository
// ──────────────────────────────────────────────────────────────────────────────

type EmpleadoRepository struct {
	s *Store
}

func NewEmpleadoRepository(s *Store) *EmpleadoRepository {
	return &EmpleadoRepository{s: s}
}

func (r *EmpleadoRepository) Create(e *entity.Empleado) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.empleados[e.IDEmpleado]; ok {
		return domain.ErrDuplicate
	}
	r.s.empleados[e.IDEmpleado] = *e
	return nil
}

func (r *EmpleadoRepository) GetByID(id int64) (*entity.Empleado, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.empleados[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmpleadoRepository) Update(e *entity.Empleado) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.empleados[e.IDEmpleado] = *e
	return nil
}

func (r *EmpleadoRepository) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.empleados, id)
	return nil
}

func (r *EmpleadoRepository) ListAll() ([]*entity.Empleado, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Empleado, 0, len(r.s.empleados))
	for _, e := range r.s.empleados {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDEmpleado < out[j].IDEmpleado })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// InventarioRepository
// ──────────────────────────────────────────────────────────────────────────────

type InventarioRepository struct {
	s *Store
}

func NewInventarioRepository(s *Store) *InventarioRepository {
	return &InventarioRepository{s: s}
}

func (r *InventarioRepository) Create(a *entity.Inventario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articulos[a.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.s.articulos[a.SKU] = *a
	return nil
}

func (r *InventarioRepository) GetBySKU(sku int64) (*entity.Inventario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articulos[sku]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetBySKUForUpdate en memoria no bloquea; el mutex del Store serializa.
func (r *InventarioRepository) GetBySKUForUpdate(sku int64) (*entity.Inventario, error) {
	return r.GetBySKU(sku)
}

func (r *InventarioRepository) Update(a *entity.Inventario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.articulos[a.SKU] = *a
	return nil
}

func (r *InventarioRepository) Delete(sku int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.articulos, sku)
	return nil
}

func (r *InventarioRepository) ListAll() ([]*entity.Inventario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Inventario, 0, len(r.s.articulos))
	for _, a := range r.s.articulos {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *InventarioRepository) List(nombre, sortBy string, desc bool, limit, offset int) ([]*entity.Inventario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Inventario, 0, len(r.s.articulos))
	needle := strings.ToLower(nombre)
	for _, a := range r.s.articulos {
		if needle != "" && !strings.Contains(strings.ToLower(a.Nombre), needle) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	ordenarInventario(out, sortBy, desc)
	return pagina(out, limit, offset), nil
}

func (r *InventarioRepository) Count(nombre string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	needle := strings.ToLower(nombre)
	var n int64
	for _, a := range r.s.articulos {
		if needle == "" || strings.Contains(strings.ToLower(a.Nombre), needle) {
			n++
		}
	}
	return n, nil
}

func ordenarInventario(items []*entity.Inventario, sortBy string, desc bool) {
	less := func(i, j int) bool { return items[i].SKU < items[j].SKU }
	switch sortBy {
	case "nombre":
		less = func(i, j int) bool { return items[i].Nombre < items[j].Nombre }
	case "cantidad":
		less = func(i, j int) bool { return items[i].Cantidad < items[j].Cantidad }
	}
	sort.Slice(items, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// PolizaRepository
// ──────────────────────────────────────────────────────────────────────────────

type PolizaRepository struct {
	s *Store
}

func NewPolizaRepository(s *Store) *PolizaRepository {
	return &PolizaRepository{s: s}
}

func (r *PolizaRepository) Create(p *entity.Poliza) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.polizas[p.IDPoliza]; ok {
		return domain.ErrDuplicate
	}
	r.s.polizas[p.IDPoliza] = *p
	return nil
}

func (r *PolizaRepository) GetByID(id int64) (*entity.Poliza, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.polizas[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PolizaRepository) Update(p *entity.Poliza) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.polizas[p.IDPoliza] = *p
	return nil
}

func (r *PolizaRepository) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.polizas, id)
	return nil
}

func (r *PolizaRepository) ListAll() ([]*entity.Poliza, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Poliza, 0, len(r.s.polizas))
	for _, p := range r.s.polizas {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDPoliza < out[j].IDPoliza })
	return out, nil
}

func (r *PolizaRepository) List(f repository.PolizaFilter, sortBy string, desc bool, limit, offset int) ([]*entity.Poliza, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Poliza, 0, len(r.s.polizas))
	for _, p := range r.s.polizas {
		if !coincide(&p, f) {
			continue
		}
		p := p
		out = append(out, &p)
	}
	ordenarPolizas(out, sortBy, desc)
	return pagina(out, limit, offset), nil
}

func (r *PolizaRepository) Count(f repository.PolizaFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.polizas {
		if coincide(&p, f) {
			n++
		}
	}
	return n, nil
}

func coincide(p *entity.Poliza, f repository.PolizaFilter) bool {
	if f.EmpleadoGenero != nil && p.EmpleadoGenero != *f.EmpleadoGenero {
		return false
	}
	if f.SKU != nil && p.SKU != *f.SKU {
		return false
	}
	return true
}

func ordenarPolizas(items []*entity.Poliza, sortBy string, desc bool) {
	less := func(i, j int) bool { return items[i].IDPoliza < items[j].IDPoliza }
	switch sortBy {
	case "empleadoGenero":
		less = func(i, j int) bool { return items[i].EmpleadoGenero < items[j].EmpleadoGenero }
	case "sku":
		less = func(i, j int) bool { return items[i].SKU < items[j].SKU }
	case "cantidad":
		less = func(i, j int) bool { return items[i].Cantidad < items[j].Cantidad }
	case "fecha":
		less = func(i, j int) bool { return items[i].Fecha.Before(items[j].Fecha) }
	}
	sort.Slice(items, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
}

func pagina[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// TxRunner imita la semántica transaccional: toma un snapshot del almacén
// antes de ejecutar fn y lo restaura completo si fn devuelve error.
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (t *TxRunner) Run(ctx context.Context, fn func(
	polizaRepo repository.PolizaRepository,
	empleadoRepo repository.EmpleadoRepository,
	inventarioRepo repository.InventarioRepository,
) error) error {
	t.s.mu.Lock()
	emp, art, pol := t.s.snapshot()
	t.s.mu.Unlock()

	err := fn(NewPolizaRepository(t.s), NewEmpleadoRepository(t.s), NewInventarioRepository(t.s))
	if err != nil {
		t.s.mu.Lock()
		t.s.empleados, t.s.articulos, t.s.polizas = emp, art, pol
		t.s.mu.Unlock()
		return err
	}
	return nil
}
