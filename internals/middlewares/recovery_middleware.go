package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"securite2ie_backend/internals/logging"
)

// RecoveryMiddleware turns panics into a 500 and logs them with the request id.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logging.Error("panic recovered",
				zap.Any("request_id", c.Locals(LocRequestID)),
				zap.String("path", c.OriginalURL()),
				zap.String("panic", fmt.Sprint(e)),
				zap.Stack("stack"),
			)
		},
	})
}
