package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/statistiques/service"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/helpers/apperror"
)

type StatistiquesController struct {
	DB *gorm.DB
}

func NewStatistiquesController(db *gorm.DB) *StatistiquesController {
	return &StatistiquesController{DB: db}
}

// GET /api/statistiques/taux-occupation
func (ctl *StatistiquesController) TauxOccupation(c *fiber.Ctx) error {
	out, err := service.TauxOccupationParMois(helper.ReqCtx(c), ctl.DB)
	if err != nil {
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(out)
}

// GET /api/statistiques/utilisation-par-jour
func (ctl *StatistiquesController) UtilisationParJour(c *fiber.Ctx) error {
	out, err := service.UtilisationParJour(helper.ReqCtx(c), ctl.DB)
	if err != nil {
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(out)
}
