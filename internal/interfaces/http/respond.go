package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/polizas/polizas-api/internal/application/dto"
	"github.com/polizas/polizas-api/internal/domain"
)

const mensajeErrorInesperado = "Ha ocurrido un error inesperado en el servidor."

// respondError traduce un error de dominio al status HTTP y al envelope de
// fallo. La clase se decide con errors.Is; cualquier error no clasificado es
// un 500 con mensaje genérico y detalle solo en el log.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(err.Error()))
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(mensajeErrorInesperado))
	}
}

// respondBadBody respuesta uniforme para cuerpos que no parsean o parámetros
// malformados; el detalle queda en el log, no en la respuesta.
func respondBadBody(c *fiber.Ctx, err error) error {
	log.Warn().Err(err).Str("path", c.Path()).Msg("cuerpo o parámetro inválido")
	return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Error de validación en los datos proporcionados."))
}
