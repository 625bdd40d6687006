// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"securite2ie_backend/internals/configs"
)

// CorsMiddleware allows the origins listed in CORS_ALLOW_ORIGINS. Credentials
// are only allowed with an explicit list; fiber refuses them with "*".
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.CorsOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: origins != "*",
	})
}
