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

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// Columnas permitidas para ordenar el inventario; cualquier otro valor cae en
// el orden por defecto (sku). El string del cliente nunca llega al SQL.
var inventarioSortColumns = map[string]string{
	"sku":      "sku",
	"nombre":   "nombre",
	"cantidad": "cantidad",
}

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *InventarioRepo) Create(a *entity.Inventario) error {
	query := `
		INSERT INTO inventario (sku, nombre, cantidad)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, a.SKU, a.Nombre, a.Cantidad)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetBySKU obtiene un artículo por SKU.
func (r *InventarioRepo) GetBySKU(sku int64) (*entity.Inventario, error) {
	return r.get(sku, false)
}

// GetBySKUForUpdate obtiene un artículo bloqueando la fila (SELECT FOR UPDATE).
// Debe usarse dentro de una transacción; serializa los read-modify-write
// concurrentes sobre la misma fila de stock.
func (r *InventarioRepo) GetBySKUForUpdate(sku int64) (*entity.Inventario, error) {
	return r.get(sku, true)
}

func (r *InventarioRepo) get(sku int64, forUpdate bool) (*entity.Inventario, error) {
	query := `
		SELECT sku, nombre, cantidad
		FROM inventario WHERE sku = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var a entity.Inventario
	err := r.q.QueryRow(context.Background(), query, sku).Scan(&a.SKU, &a.Nombre, &a.Cantidad)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return &a, nil
}

// Update actualiza un artículo existente (incluida la cantidad).
func (r *InventarioRepo) Update(a *entity.Inventario) error {
	query := `
		UPDATE inventario SET nombre = $2, cantidad = $3
		WHERE sku = $1`
	_, err := r.q.Exec(context.Background(), query, a.SKU, a.Nombre, a.Cantidad)
	if err != nil {
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// Delete elimina un artículo por SKU.
func (r *InventarioRepo) Delete(sku int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventario WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}

// ListAll lista todo el inventario ordenado por SKU.
func (r *InventarioRepo) ListAll() ([]*entity.Inventario, error) {
	query := `
		SELECT sku, nombre, cantidad
		FROM inventario ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	return scanArticulos(rows)
}

// List pagina el inventario con filtro opcional por nombre (ILIKE).
func (r *InventarioRepo) List(nombre, sortBy string, desc bool, limit, offset int) ([]*entity.Inventario, error) {
	query := `
		SELECT sku, nombre, cantidad
		FROM inventario`
	args := []any{}
	if nombre != "" {
		query += ` WHERE nombre ILIKE '%' || $1 || '%'`
		args = append(args, nombre)
	}
	query += " ORDER BY " + orderBy(inventarioSortColumns, sortBy, "sku", desc)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario paginado: %w", err)
	}
	defer rows.Close()
	return scanArticulos(rows)
}

// Count cuenta los artículos que pasarían el filtro de List.
func (r *InventarioRepo) Count(nombre string) (int64, error) {
	query := `SELECT count(*) FROM inventario`
	args := []any{}
	if nombre != "" {
		query += ` WHERE nombre ILIKE '%' || $1 || '%'`
		args = append(args, nombre)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count inventario: %w", err)
	}
	return total, nil
}

func scanArticulos(rows pgx.Rows) ([]*entity.Inventario, error) {
	var list []*entity.Inventario
	for rows.Next() {
		var a entity.Inventario
		if err := rows.Scan(&a.SKU, &a.Nombre, &a.Cantidad); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// orderBy arma la cláusula de orden a partir del whitelist de columnas.
func orderBy(columns map[string]string, sortBy, def string, desc bool) string {
	col, ok := columns[sortBy]
	if !ok {
		col = def
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
