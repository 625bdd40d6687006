package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/statistiques/controller"
)

func StatistiquesRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStatistiquesController(db)
	g := api.Group("/statistiques")

	g.Get("/taux-occupation", ctl.TauxOccupation)
	g.Get("/utilisation-par-jour", ctl.UtilisationParJour)
}
