package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "securite2ie_backend/internals/helpers"
)

func newLimiter(max int, exp time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: exp,
		Storage:    limiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every API endpoint
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "Trop de requêtes. Réessayez plus tard.")
}

// Login is stricter
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "Trop de tentatives de connexion. Réessayez dans un instant.")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "Trop de tentatives d'inscription. Patientez quelques minutes.")
}
