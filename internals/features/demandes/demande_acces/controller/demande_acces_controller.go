// file: internals/features/demandes/demande_acces/controller/demande_acces_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"securite2ie_backend/internals/features/demandes/demande_acces/dto"
	"securite2ie_backend/internals/features/demandes/demande_acces/service"
	helper "securite2ie_backend/internals/helpers"
)

type DemandeAccesController struct {
	Ledger *service.Ledger
}

func NewDemandeAccesController(l *service.Ledger) *DemandeAccesController {
	return &DemandeAccesController{Ledger: l}
}

/* =========================
   SUBMIT
   POST /api/demande-acces
========================= */

func (ctl *DemandeAccesController) Submit(c *fiber.Ctx) error {
	var req dto.CreateDemandeAccesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide.")
	}
	req.Normalize()

	row, err := ctl.Ledger.Submit(helper.ReqCtx(c), service.SubmitInput{
		UserID:     req.UserID,
		SalleID:    req.SalleID,
		Date:       req.Date,
		HeureDebut: req.HeureDebut,
		HeureFin:   req.HeureFin,
		Motif:      req.Motif,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Demande d'accès soumise avec succès !", "demande", dto.ToResponse(*row))
}

/* =========================
   TRANSITIONS
========================= */

// PATCH /api/demande-acces/:id/approuver
func (ctl *DemandeAccesController) Approve(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, service.ErrRequestNotFound)
	}
	row, err := ctl.Ledger.Approve(helper.ReqCtx(c), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Demande approuvée avec succès !", "demande", dto.ToResponse(*row))
}

// PATCH /api/demande-acces/:id/rejeter
func (ctl *DemandeAccesController) Reject(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, service.ErrRequestNotFound)
	}
	row, err := ctl.Ledger.Reject(helper.ReqCtx(c), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Demande rejetée avec succès !", "demande", dto.ToResponse(*row))
}

/* =========================
   QUERIES
========================= */

// GET /api/demande-acces/user/:user_id
func (ctl *DemandeAccesController) ListByUser(c *fiber.Ctx) error {
	userID, ok := helper.ParamUUID(c, "user_id")
	if !ok {
		return helper.JsonAppError(c, service.ErrUserNotFound)
	}
	rows, err := ctl.Ledger.ListByUser(helper.ReqCtx(c), userID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Demandes récupérées avec succès !", "demandes", dto.ToResponses(rows))
}

// GET /api/demande-acces?statut=
func (ctl *DemandeAccesController) List(c *fiber.Ctx) error {
	var filter *string
	if s := c.Query("statut"); s != "" {
		filter = &s
	}
	rows, err := ctl.Ledger.List(helper.ReqCtx(c), filter)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.JSON(fiber.Map{"demandes": dto.ToResponses(rows)})
}

// GET /api/demande-acces/:id
func (ctl *DemandeAccesController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, service.ErrRequestNotFound)
	}
	row, err := ctl.Ledger.Get(helper.ReqCtx(c), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.JSON(fiber.Map{"demande": dto.ToResponse(*row)})
}
