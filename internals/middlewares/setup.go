package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"securite2ie_backend/internals/middlewares/logger"
)

// requestTimeout matches the statement_timeout set on the DB connection.
const requestTimeout = 5 * time.Second

// SetupMiddlewares installs the app-wide chain. Order matters: the request id
// must exist before recovery and access logging read it.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RequestID())
	app.Use(RecoveryMiddleware())
	app.Use(Timeout(requestTimeout))
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
