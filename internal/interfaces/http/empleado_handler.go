package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/application/usecase"
	"github.com/polizas/polizas-api/internal/domain"
)

// EmpleadoHandler maneja las peticiones HTTP de empleados (CRUD simple).
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// List godoc
// @Summary      Obtener todos los empleados
// @Tags         empleados
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /empleados [get]
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out))
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         empleados
// @Produce      json
// @Param        idEmpleado  path  int  true  "ID del empleado"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /empleados/{idEmpleado} [get]
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "idEmpleado")
	if err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(
			fmt.Sprintf("Empleado no encontrado con ID: %d", id)))
	}
	return c.JSON(dto.Success(out))
}

// Create godoc
// @Summary      Crear un nuevo empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpleadoRequest  true  "Datos del empleado"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /empleados [post]
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	if in.IDEmpleado <= 0 || in.Nombre == "" || in.Apellido == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Error de validación en los datos proporcionados."))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(
				fmt.Sprintf("Ya existe un empleado con ID: %d", in.IDEmpleado)))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out))
}

// Update godoc
// @Summary      Actualizar un empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        idEmpleado  path  int                  true  "ID del empleado"
// @Param        body        body  dto.EmpleadoRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /empleados/{idEmpleado} [put]
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "idEmpleado")
	if err != nil {
		return respondBadBody(c, err)
	}
	var in dto.EmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(
			fmt.Sprintf("Empleado no encontrado con ID: %d", id)))
	}
	return c.JSON(dto.Success(out))
}

// Delete godoc
// @Summary      Eliminar un empleado
// @Tags         empleados
// @Produce      json
// @Param        idEmpleado  path  int  true  "ID del empleado"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /empleados/{idEmpleado} [delete]
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "idEmpleado")
	if err != nil {
		return respondBadBody(c, err)
	}
	found, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(
			fmt.Sprintf("Empleado no encontrado con ID: %d", id)))
	}
	return c.JSON(dto.Success(dto.Mensaje{Mensaje: "Empleado eliminado correctamente"}))
}
