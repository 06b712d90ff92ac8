package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpleadoCreateYGet(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/empleados", fiber.Map{
		"idEmpleado": 2, "nombre": "Carlos", "apellido": "Rodríguez", "puesto": "Bodeguero",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "OK", env.Meta.Status)

	resp, env = doJSON(t, app, http.MethodGet, "/empleados/2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var emp struct {
		IDEmpleado int64  `json:"idEmpleado"`
		Nombre     string `json:"nombre"`
		Apellido   string `json:"apellido"`
		Puesto     string `json:"puesto"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &emp))
	assert.Equal(t, int64(2), emp.IDEmpleado)
	assert.Equal(t, "Carlos", emp.Nombre)
	assert.Equal(t, "Rodríguez", emp.Apellido)
	assert.Equal(t, "Bodeguero", emp.Puesto)
}

func TestEmpleadoCreate_Duplicado_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	// El empleado 1 viene sembrado.
	resp, env := doJSON(t, app, http.MethodPost, "/empleados", fiber.Map{
		"idEmpleado": 1, "nombre": "Otra", "apellido": "Persona", "puesto": "X",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "FAILURE", env.Meta.Status)
	assert.Equal(t, "Ya existe un empleado con ID: 1", mensajeDe(t, env))
}

func TestEmpleadoCreate_SinNombre_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/empleados", fiber.Map{
		"idEmpleado": 3, "apellido": "SinNombre",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Error de validación en los datos proporcionados.", mensajeDe(t, env))
}

func TestEmpleadoGet_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/empleados/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Empleado no encontrado con ID: 99", mensajeDe(t, env))
}

func TestEmpleadoDelete_ConfirmaYLuego404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodDelete, "/empleados/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Empleado eliminado correctamente", mensajeDe(t, env))

	resp, _ = doJSON(t, app, http.MethodDelete, "/empleados/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmpleadoUpdate_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPut, "/empleados/99", fiber.Map{
		"nombre": "Nadie", "apellido": "Nunca", "puesto": "X",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Empleado no encontrado con ID: 99", mensajeDe(t, env))
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestArticuloCreateYGet(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/inventario", fiber.Map{
		"sku": 200, "nombre": "Monitor", "cantidad": 12,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "OK", env.Meta.Status)

	assert.Equal(t, 12, stockPorHTTP(t, app, 200))
}

func TestArticuloCreate_Duplicado_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	// El SKU 100 viene sembrado.
	resp, env := doJSON(t, app, http.MethodPost, "/inventario", fiber.Map{
		"sku": 100, "nombre": "Otro", "cantidad": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ya existe un artículo con SKU: 100", mensajeDe(t, env))
}

func TestArticuloCreate_CantidadNegativa_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/inventario", fiber.Map{
		"sku": 300, "nombre": "Teclado", "cantidad": -1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Error de validación en los datos proporcionados.", mensajeDe(t, env))
}

func TestArticuloUpdate_EditaCantidadDirecta(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/inventario/100", fiber.Map{
		"nombre": "Laptop", "cantidad": 20,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 20, stockPorHTTP(t, app, 100))
}

func TestArticuloGet_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/inventario/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Artículo no encontrado con SKU: 999", mensajeDe(t, env))
}

func TestArticuloDelete_ConfirmaYLuego404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodDelete, "/inventario/100", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Artículo eliminado correctamente", mensajeDe(t, env))

	resp, _ = doJSON(t, app, http.MethodGet, "/inventario/100", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventarioListPaged_FiltroPorNombre(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, art := range []fiber.Map{
		{"sku": 200, "nombre": "Monitor", "cantidad": 12},
		{"sku": 300, "nombre": "Teclado", "cantidad": 30},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/inventario", art)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, http.MethodGet, "/inventario/paginated?nombre=mon", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Content []struct {
			SKU    int64  `json:"sku"`
			Nombre string `json:"nombre"`
		} `json:"content"`
		TotalItems int64 `json:"totalItems"`
		TotalPages int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.TotalItems)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Monitor", page.Content[0].Nombre)
}
