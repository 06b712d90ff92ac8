package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/polizas/polizas-api/pkg/logger"
)

// LocalRequestID clave en c.Locals donde queda el id de correlación.
const LocalRequestID = "request_id"

// RequestLogger middleware que asigna un request id (uuid) y registra método,
// ruta, status y latencia de cada petición. Errores 5xx suben a nivel error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
