package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "securite2ie_backend/internals/features/users/auth/route"
	userRoute "securite2ie_backend/internals/features/users/user/route"
	rateLimiter "securite2ie_backend/internals/middlewares"
)

// UserRoutes creates the rate-limited /api group, mounts the user endpoints
// on it and returns it for the other features.
func UserRoutes(app *fiber.App, db *gorm.DB, adminGuard ...fiber.Handler) fiber.Router {
	api := app.Group("/api",
		rateLimiter.GlobalRateLimiter(),
	)

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db, adminGuard...)
	return api
}
