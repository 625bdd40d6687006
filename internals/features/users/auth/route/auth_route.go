// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "securite2ie_backend/internals/features/users/auth/controller"
	rateLimiter "securite2ie_backend/internals/middlewares"
)

// AuthRoutes: /api/users/{register,login,logout}
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	g := api.Group("/users")
	g.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	g.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	g.Post("/logout", authController.Logout)
}
