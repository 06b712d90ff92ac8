package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/application/usecase"
	"github.com/polizas/polizas-api/internal/domain"
)

// InventarioHandler maneja las peticiones HTTP del inventario (CRUD simple).
// La edición directa de cantidad comparte fila con el ciclo de vida de
// pólizas; la disciplina transaccional vive del lado de la base.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// List godoc
// @Summary      Obtener todo el inventario
// @Tags         inventario
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListPaged godoc
// @Summary      Obtener inventario paginado
// @Description  Devuelve una página de artículos con filtro opcional por nombre
// @Tags         inventario
// @Produce      json
// @Param        page     query  int     false  "Página (base 0)"   default(0)
// @Param        size     query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy   query  string  false  "Campo de orden"    default(sku)
// @Param        sortDir  query  string  false  "asc o desc"        default(asc)
// @Param        nombre   query  string  false  "Filtro por nombre (parcial)"
// @Success      200  {object}  dto.Response
// @Router       /inventario/paginated [get]
func (h *InventarioHandler) ListPaged(c *fiber.Ctx) error {
	q := dto.InventarioPageQuery{
		Page:    c.QueryInt("page", 0),
		Size:    c.QueryInt("size", 10),
		SortBy:  c.Query("sortBy", "sku"),
		SortDir: c.Query("sortDir", "asc"),
		Nombre:  c.Query("nombre"),
	}
	out, err := h.uc.ListPaged(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetBySKU godoc
// @Summary      Obtener artículo por SKU
// @Tags         inventario
// @Produce      json
// @Param        sku  path  int  true  "SKU del artículo"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /inventario/{sku} [get]
func (h *InventarioHandler) GetBySKU(c *fiber.Ctx) error {
	sku, err := paramInt64(c, "sku")
	if err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.GetBySKU(sku)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(
			fmt.Sprintf("Artículo no encontrado con SKU: %d", sku)))
	}
	return c.JSON(dto.Success(out))
}

// Create godoc
// @Summary      Crear un nuevo artículo
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ArticuloRequest  true  "Datos del artículo"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /inventario [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.ArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	if in.SKU <= 0 || in.Nombre == "" || in.Cantidad < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Error de validación en los datos proporcionados."))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(
				fmt.Sprintf("Ya existe un artículo con SKU: %d", in.SKU)))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Update godoc
// @Summary      Actualizar un artículo
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        sku   path  int                  true  "SKU del artículo"
// @Param        body  body  dto.ArticuloRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /inventario/{sku} [put]
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	sku, err := paramInt64(c, "sku")
	if err != nil {
		return respondBadBody(c, err)
	}
	var in dto.ArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	if in.Cantidad < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Error de validación en los datos proporcionados."))
	}
	out, err := h.uc.Update(sku, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(
			fmt.Sprintf("Artículo no encontrado con SKU: %d", sku)))
	}
	return c.JSON(dto.Success(out))
}

// Delete godoc
// @Summary      Eliminar un artículo
// @Tags         inventario
// @Produce      json
// @Param        sku  path  int  true  "SKU del artículo"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /inventario/{sku} [delete]
func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	sku, err := paramInt64(c, "sku")
	if err != nil {
		return respondBadBody(c, err)
	}
	found, err := h.uc.Delete(sku)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(
			fmt.Sprintf("Artículo no encontrado con SKU: %d", sku)))
	}
	return c.JSON(dto.Success(dto.Mensaje{Mensaje: "Artículo eliminado correctamente"}))
}
