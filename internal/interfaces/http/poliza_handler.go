package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/application/poliza"
)

// PolizaHandler maneja las peticiones HTTP del ciclo de vida de pólizas.
type PolizaHandler struct {
	uc *poliza.UseCase
}

// NewPolizaHandler construye el handler.
func NewPolizaHandler(uc *poliza.UseCase) *PolizaHandler {
	return &PolizaHandler{uc: uc}
}

// List godoc
// @Summary      Obtener todas las pólizas
// @Description  Obtiene la lista de todas las pólizas registradas
// @Tags         polizas
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /polizas [get]
func (h *PolizaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// ListPaged godoc
// @Summary      Obtener pólizas paginadas
// @Description  Obtiene una página de pólizas con filtros opcionales por empleado y SKU
// @Tags         polizas
// @Produce      json
// @Param        page        query  int     false  "Página (base 0)"      default(0)
// @Param        size        query  int     false  "Tamaño de página"     default(10)
// @Param        sortBy      query  string  false  "Campo de orden"       default(idPoliza)
// @Param        sortDir     query  string  false  "asc o desc"           default(asc)
// @Param        empleadoId  query  int     false  "Filtro por empleado"
// @Param        sku         query  int     false  "Filtro por SKU"
// @Success      200  {object}  dto.Response
// @Router       /polizas/paginated [get]
func (h *PolizaHandler) ListPaged(c *fiber.Ctx) error {
	q := dto.PolizaPageQuery{
		Page:    c.QueryInt("page", 0),
		Size:    c.QueryInt("size", 10),
		SortBy:  c.Query("sortBy", "idPoliza"),
		SortDir: c.Query("sortDir", "asc"),
	}
	if raw := c.Query("empleadoId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondBadBody(c, err)
		}
		q.EmpleadoID = &id
	}
	if raw := c.Query("sku"); raw != "" {
		sku, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondBadBody(c, err)
		}
		q.SKU = &sku
	}

	out, err := h.uc.ListPaged(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByID godoc
// @Summary      Obtener póliza por ID
// @Description  Obtiene los detalles de una póliza por su ID
// @Tags         polizas
// @Produce      json
// @Param        idPoliza  path  int  true  "ID de la póliza"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /polizas/{idPoliza} [get]
func (h *PolizaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "idPoliza")
	if err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Create godoc
// @Summary      Crear una nueva póliza
// @Description  Crea una nueva póliza y descuenta la cantidad del inventario
// @Tags         polizas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PolizaRequest  true  "Datos de la póliza"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /polizas [post]
func (h *PolizaHandler) Create(c *fiber.Ctx) error {
	var in dto.PolizaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Update godoc
// @Summary      Actualizar póliza
// @Description  Reasigna el empleado de una póliza existente; sku y cantidad del cuerpo no se aplican
// @Tags         polizas
// @Accept       json
// @Produce      json
// @Param        idPoliza  path  int                true  "ID de la póliza"
// @Param        body      body  dto.PolizaRequest  true  "Datos de la póliza"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /polizas/{idPoliza} [put]
func (h *PolizaHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "idPoliza")
	if err != nil {
		return respondBadBody(c, err)
	}
	var in dto.PolizaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// Delete godoc
// @Summary      Eliminar póliza
// @Description  Elimina una póliza y devuelve su cantidad al inventario
// @Tags         polizas
// @Produce      json
// @Param        idPoliza  path  int  true  "ID de la póliza"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /polizas/{idPoliza} [delete]
func (h *PolizaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "idPoliza")
	if err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// paramInt64 parsea un parámetro de ruta numérico.
func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
