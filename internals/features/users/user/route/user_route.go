// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/users/user/controller"
)

// UserRoutes mounts /users on api. adminGuard protects the write endpoint.
func UserRoutes(api fiber.Router, db *gorm.DB, adminGuard ...fiber.Handler) {
	ctl := controller.NewUserController(db, nil)
	g := api.Group("/users")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", append(adminGuard[:len(adminGuard):len(adminGuard)], ctl.Update)...)
}
