package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polizas/polizas-api/internal/application/poliza"
	"github.com/polizas/polizas-api/internal/application/usecase"
	"github.com/polizas/polizas-api/internal/domain/entity"
	"github.com/polizas/polizas-api/internal/infrastructure/memory"
	apphttp "github.com/polizas/polizas-api/internal/interfaces/http"
	"github.com/polizas/polizas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la app Fiber completa (router real) sobre el almacén
// en memoria, sembrado con un empleado (1) y un artículo (100, stock 5).
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	empRepo := memory.NewEmpleadoRepository(store)
	invRepo := memory.NewInventarioRepository(store)
	polRepo := memory.NewPolizaRepository(store)

	require.NoError(t, empRepo.Create(&entity.Empleado{IDEmpleado: 1, Nombre: "María", Apellido: "García", Puesto: "Analista"}))
	require.NoError(t, invRepo.Create(&entity.Inventario{SKU: 100, Nombre: "Laptop", Cantidad: 5}))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PolizaUC:     poliza.NewUseCase(memory.NewTxRunner(store), polRepo, empRepo, invRepo, logger.Nop()),
		EmpleadoUC:   usecase.NewEmpleadoUseCase(empRepo),
		InventarioUC: usecase.NewInventarioUseCase(invRepo),
	})
	return app, store
}

// envelope forma cruda de todas las respuestas: {meta:{status}, data}.
type envelope struct {
	Meta struct {
		Status string `json:"status"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env), "toda respuesta debe traer el envelope")
	return resp, env
}

func mensajeDe(t *testing.T, env envelope) string {
	t.Helper()
	var data struct {
		Mensaje string `json:"mensaje"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Mensaje
}

func cuerpoPoliza(id, empleado, sku int64, cantidad int) fiber.Map {
	return fiber.Map{"idPoliza": id, "empleadoGenero": empleado, "sku": sku, "cantidad": cantidad}
}

func stockPorHTTP(t *testing.T, app *fiber.App, sku int64) int {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/inventario/%d", sku), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var art struct {
		Cantidad int `json:"cantidad"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &art))
	return art.Cantidad
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /polizas
// ──────────────────────────────────────────────────────────────────────────────

func TestPolizaCreate_DevuelveVistaYDescuentaStock(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 3))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "OK", env.Meta.Status)

	var data struct {
		Poliza struct {
			IDPoliza int64 `json:"idPoliza"`
			Cantidad int   `json:"cantidad"`
		} `json:"poliza"`
		Empleado struct {
			Nombre   string `json:"nombre"`
			Apellido string `json:"apellido"`
		} `json:"empleado"`
		DetalleArticulo struct {
			SKU    int64  `json:"sku"`
			Nombre string `json:"nombre"`
		} `json:"detalleArticulo"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(1), data.Poliza.IDPoliza)
	assert.Equal(t, 3, data.Poliza.Cantidad)
	assert.Equal(t, "María", data.Empleado.Nombre)
	assert.Equal(t, "García", data.Empleado.Apellido)
	assert.Equal(t, int64(100), data.DetalleArticulo.SKU)
	assert.Equal(t, "Laptop", data.DetalleArticulo.Nombre)

	assert.Equal(t, 2, stockPorHTTP(t, app, 100), "el inventario debe reflejar el retiro")
}

func TestPolizaCreate_StockInsuficiente_Retorna400SinMutar(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 10))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "FAILURE", env.Meta.Status)
	assert.Equal(t, "No hay suficiente cantidad en inventario para el artículo con SKU: 100", mensajeDe(t, env))

	assert.Equal(t, 5, stockPorHTTP(t, app, 100), "el stock no debe cambiar")
}

func TestPolizaCreate_EmpleadoInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 99, 100, 1))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "FAILURE", env.Meta.Status)
	assert.Equal(t, "Empleado no encontrado con ID: 99", mensajeDe(t, env))
}

func TestPolizaCreate_CuerpoInvalido_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 0))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Error de validación en los datos proporcionados.", mensajeDe(t, env))
}

func TestPolizaCreate_IDDuplicado_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 1))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ya existe una póliza con ID: 1", mensajeDe(t, env))
	assert.Equal(t, 4, stockPorHTTP(t, app, 100), "solo el primer create descuenta")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /polizas, /polizas/paginated, /polizas/:idPoliza
// ──────────────────────────────────────────────────────────────────────────────

func TestPolizaGetByID_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/polizas/7", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "FAILURE", env.Meta.Status)
	assert.Equal(t, "Póliza no encontrada con ID: 7", mensajeDe(t, env))
}

func TestPolizaGetByID_ParametroNoNumerico_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/polizas/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Error de validación en los datos proporcionados.", mensajeDe(t, env))
}

func TestPolizaListPaged_FormaDePagina(t *testing.T) {
	app, _ := buildTestApp(t)
	for i := int64(1); i <= 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(i, 1, 100, 1))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, http.MethodGet, "/polizas/paginated?page=0&size=2&sortBy=idPoliza&sortDir=desc", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", env.Meta.Status)

	var page struct {
		Content []struct {
			Poliza struct {
				IDPoliza int64 `json:"idPoliza"`
			} `json:"poliza"`
		} `json:"content"`
		CurrentPage int   `json:"currentPage"`
		TotalItems  int64 `json:"totalItems"`
		TotalPages  int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 0, page.CurrentPage)
	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(3), page.Content[0].Poliza.IDPoliza, "desc debe traer primero el id mayor")
}

func TestPolizaListPaged_FiltroNoNumerico_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/polizas/paginated?empleadoId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT y DELETE /polizas/:idPoliza
// ──────────────────────────────────────────────────────────────────────────────

func TestPolizaUpdate_ConfirmaConIDMensaje(t *testing.T) {
	app, store := buildTestApp(t)
	require.NoError(t, memory.NewEmpleadoRepository(store).Create(
		&entity.Empleado{IDEmpleado: 2, Nombre: "Carlos", Apellido: "Rodríguez", Puesto: "Bodeguero"}))

	resp, _ := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPut, "/polizas/1", cuerpoPoliza(1, 2, 100, 2))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", env.Meta.Status)

	var data struct {
		Mensaje struct {
			IDMensaje string `json:"idMensaje"`
		} `json:"mensaje"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Se actualizó correctamente la poliza 1", data.Mensaje.IDMensaje)
}

func TestPolizaDelete_RestauraStockYLuego404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/polizas", cuerpoPoliza(1, 1, 100, 3))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 2, stockPorHTTP(t, app, 100))

	resp, env := doJSON(t, app, http.MethodDelete, "/polizas/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Mensaje struct {
			IDMensaje string `json:"idMensaje"`
		} `json:"mensaje"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Se eliminó correctamente la poliza 1", data.Mensaje.IDMensaje)
	assert.Equal(t, 5, stockPorHTTP(t, app, 100), "eliminar la póliza devuelve la cantidad")

	resp, env = doJSON(t, app, http.MethodGet, "/polizas/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Póliza no encontrada con ID: 1", mensajeDe(t, env))
}
