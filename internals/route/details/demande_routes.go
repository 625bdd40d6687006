package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	demandeRoute "securite2ie_backend/internals/features/demandes/demande_acces/route"
	statRoute "securite2ie_backend/internals/features/statistiques/route"
)

func DemandeAccesRoutes(api fiber.Router, db *gorm.DB, adminGuard ...fiber.Handler) {
	demandeRoute.DemandeAccesRoutes(api, db, adminGuard...)
}

// Statistics are read-only aggregates over approved requests.
func StatistiquesRoutes(api fiber.Router, db *gorm.DB) {
	statRoute.StatistiquesRoutes(api, db)
}
