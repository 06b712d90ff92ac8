package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/polizas/polizas-api/internal/domain"
	"github.com/polizas/polizas-api/internal/domain/entity"
	"github.com/polizas/polizas-api/internal/domain/repository"
)

var _ repository.PolizaRepository = (*PolizaRepo)(nil)

// Columnas permitidas para ordenar pólizas; las claves son los nombres de
// campo del API. Valores desconocidos caen en id_poliza.
var polizaSortColumns = map[string]string{
	"idPoliza":       "id_poliza",
	"empleadoGenero": "empleado_genero",
	"sku":            "sku",
	"cantidad":       "cantidad",
	"fecha":          "fecha",
}

// PolizaRepo implementación de PolizaRepository sobre PostgreSQL (usable con pool o tx).
type PolizaRepo struct {
	q Querier
}

// NewPolizaRepository construye el adaptador de persistencia para pólizas. Pasar pool o tx (Querier).
func NewPolizaRepository(q Querier) *PolizaRepo {
	return &PolizaRepo{q: q}
}

// Create persiste una nueva póliza.
func (r *PolizaRepo) Create(p *entity.Poliza) error {
	query := `
		INSERT INTO polizas (id_poliza, empleado_genero, sku, cantidad, fecha)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		p.IDPoliza, p.EmpleadoGenero, p.SKU, p.Cantidad, p.Fecha,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert poliza: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza por ID.
func (r *PolizaRepo) GetByID(id int64) (*entity.Poliza, error) {
	query := `
		SELECT id_poliza, empleado_genero, sku, cantidad, fecha
		FROM polizas WHERE id_poliza = $1`
	var p entity.Poliza
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.IDPoliza, &p.EmpleadoGenero, &p.SKU, &p.Cantidad, &p.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get poliza: %w", err)
	}
	return &p, nil
}

// Update actualiza una póliza existente. La fecha no se toca: se asigna una
// sola vez al crear.
func (r *PolizaRepo) Update(p *entity.Poliza) error {
	query := `
		UPDATE polizas SET empleado_genero = $2, sku = $3, cantidad = $4
		WHERE id_poliza = $1`
	_, err := r.q.Exec(context.Background(), query, p.IDPoliza, p.EmpleadoGenero, p.SKU, p.Cantidad)
	if err != nil {
		return fmt.Errorf("update poliza: %w", err)
	}
	return nil
}

// Delete elimina una póliza por ID.
func (r *PolizaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM polizas WHERE id_poliza = $1`, id)
	if err != nil {
		return fmt.Errorf("delete poliza: %w", err)
	}
	return nil
}

// ListAll lista todas las pólizas ordenadas por ID.
func (r *PolizaRepo) ListAll() ([]*entity.Poliza, error) {
	query := `
		SELECT id_poliza, empleado_genero, sku, cantidad, fecha
		FROM polizas ORDER BY id_poliza`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list polizas: %w", err)
	}
	defer rows.Close()
	return scanPolizas(rows)
}

// List pagina las pólizas con filtros opcionales por empleado y SKU.
func (r *PolizaRepo) List(f repository.PolizaFilter, sortBy string, desc bool, limit, offset int) ([]*entity.Poliza, error) {
	query := `
		SELECT id_poliza, empleado_genero, sku, cantidad, fecha
		FROM polizas`
	where, args := polizaWhere(f)
	query += where
	query += " ORDER BY " + orderBy(polizaSortColumns, sortBy, "id_poliza", desc)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list polizas paginadas: %w", err)
	}
	defer rows.Close()
	return scanPolizas(rows)
}

// Count cuenta las pólizas que pasarían los filtros de List.
func (r *PolizaRepo) Count(f repository.PolizaFilter) (int64, error) {
	query := `SELECT count(*) FROM polizas`
	where, args := polizaWhere(f)
	query += where
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count polizas: %w", err)
	}
	return total, nil
}

// polizaWhere arma la cláusula WHERE combinando los filtros presentes con AND.
func polizaWhere(f repository.PolizaFilter) (string, []any) {
	var conds []string
	var args []any
	if f.EmpleadoGenero != nil {
		args = append(args, *f.EmpleadoGenero)
		conds = append(conds, fmt.Sprintf("empleado_genero = $%d", len(args)))
	}
	if f.SKU != nil {
		args = append(args, *f.SKU)
		conds = append(conds, fmt.Sprintf("sku = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

func scanPolizas(rows pgx.Rows) ([]*entity.Poliza, error) {
	var list []*entity.Poliza
	for rows.Next() {
		var p entity.Poliza
		if err := rows.Scan(&p.IDPoliza, &p.EmpleadoGenero, &p.SKU, &p.Cantidad, &p.Fecha); err != nil {
			return nil, fmt.Errorf("scan poliza: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
