package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	salleRoute "securite2ie_backend/internals/features/salles/salle/route"
)

func SalleRoutes(api fiber.Router, db *gorm.DB, adminGuard ...fiber.Handler) {
	salleRoute.SalleRoutes(api, db, adminGuard...)
}
