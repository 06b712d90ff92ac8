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

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación de EmpleadoRepository sobre PostgreSQL (usable con pool o tx).
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmpleadoRepo) Create(e *entity.Empleado) error {
	query := `
		INSERT INTO empleado (id_empleado, nombre, apellido, puesto)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, e.IDEmpleado, e.Nombre, e.Apellido, e.Puesto)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmpleadoRepo) GetByID(id int64) (*entity.Empleado, error) {
	query := `
		SELECT id_empleado, nombre, apellido, puesto
		FROM empleado WHERE id_empleado = $1`
	var e entity.Empleado
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.IDEmpleado, &e.Nombre, &e.Apellido, &e.Puesto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado existente.
func (r *EmpleadoRepo) Update(e *entity.Empleado) error {
	query := `
		UPDATE empleado SET nombre = $2, apellido = $3, puesto = $4
		WHERE id_empleado = $1`
	_, err := r.q.Exec(context.Background(), query, e.IDEmpleado, e.Nombre, e.Apellido, e.Puesto)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmpleadoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM empleado WHERE id_empleado = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	return nil
}

// ListAll lista todos los empleados ordenados por ID.
func (r *EmpleadoRepo) ListAll() ([]*entity.Empleado, error) {
	query := `
		SELECT id_empleado, nombre, apellido, puesto
		FROM empleado ORDER BY id_empleado`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		var e entity.Empleado
		if err := rows.Scan(&e.IDEmpleado, &e.Nombre, &e.Apellido, &e.Puesto); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
