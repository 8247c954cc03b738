package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"cukportal_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
