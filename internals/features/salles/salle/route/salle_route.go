package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/salles/salle/controller"
)

// SalleRoutes mounts /salles. adminGuard protects create and delete.
func SalleRoutes(api fiber.Router, db *gorm.DB, adminGuard ...fiber.Handler) {
	ctl := controller.NewSalleController(db, nil)
	g := api.Group("/salles")

	g.Get("/", ctl.List)
	g.Get("/slug/:slug", ctl.GetBySlug)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", append(adminGuard[:len(adminGuard):len(adminGuard)], ctl.Create)...)
	g.Delete("/:id", append(adminGuard[:len(adminGuard):len(adminGuard)], ctl.Delete)...)
}
