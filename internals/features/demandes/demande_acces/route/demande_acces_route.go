package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/configs"
	"securite2ie_backend/internals/features/demandes/demande_acces/controller"
	"securite2ie_backend/internals/features/demandes/demande_acces/service"
)

// DemandeAccesRoutes mounts /demande-acces. adminGuard protects the
// transitions and the global listing.
func DemandeAccesRoutes(api fiber.Router, db *gorm.DB, adminGuard ...fiber.Handler) {
	ctl := controller.NewDemandeAccesController(service.NewLedger(db, configs.Location()))
	g := api.Group("/demande-acces")
	guarded := func(h fiber.Handler) []fiber.Handler {
		return append(adminGuard[:len(adminGuard):len(adminGuard)], h)
	}

	g.Post("/", ctl.Submit)
	g.Get("/", guarded(ctl.List)...)
	g.Get("/user/:user_id", ctl.ListByUser)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id/approuver", guarded(ctl.Approve)...)
	g.Patch("/:id/rejeter", guarded(ctl.Reject)...)
}
