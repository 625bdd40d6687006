// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/logging"
	authMiddleware "securite2ie_backend/internals/middlewares/auth"
	routeDetails "securite2ie_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// AdminGuard is empty unless AUTH_ENFORCE=true.
	adminGuard := authMiddleware.AdminGuard(db)
	if len(adminGuard) == 0 {
		logging.Warn("⚠️ AUTH_ENFORCE is off, administrative routes are open")
	}

	logging.Info("[INFO] Mounting user routes...")
	api := routeDetails.UserRoutes(app, db, adminGuard...)

	logging.Info("[INFO] Mounting salle routes...")
	routeDetails.SalleRoutes(api, db, adminGuard...)

	logging.Info("[INFO] Mounting demande-acces routes...")
	routeDetails.DemandeAccesRoutes(api, db, adminGuard...)

	logging.Info("[INFO] Mounting statistiques routes...")
	routeDetails.StatistiquesRoutes(api, db)
}
