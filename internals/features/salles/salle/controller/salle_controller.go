// file: internals/features/salles/salle/controller/salle_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/salles/salle/dto"
	"securite2ie_backend/internals/features/salles/salle/repository"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/helpers/apperror"
)

const slugMaxLen = 120

type SalleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSalleController(db *gorm.DB, v *validator.Validate) *SalleController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &SalleController{DB: db, Validate: v}
}

var (
	errSalleNotFound = apperror.NotFound(apperror.CodeRoomNotFound, "Salle non trouvée.")
	errSalleDup      = apperror.Conflict(apperror.CodeDuplicate, "Nom de salle déjà utilisé.")
)

/* =========================
   CREATE
   POST /api/salles
========================= */

func (ctl *SalleController) Create(c *fiber.Ctx) error {
	var req dto.CreateSalleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide.")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonAppError(c, apperror.Validation(apperror.CodeMissingFields, "Tous les champs sont obligatoires."))
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ctx := helper.ReqCtx(c)
	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlugCI(ctx, tx, "salles", "slug", helper.Slugify(row.Nom, slugMaxLen), slugMaxLen)
		if err != nil {
			return err
		}
		row.Slug = slug
		return repository.Create(ctx, tx, &row)
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonAppError(c, errSalleDup)
		}
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return helper.JsonCreated(c, "Salle créée avec succès !", "salle", row)
}

/* =========================
   READ
========================= */

// GET /api/salles
func (ctl *SalleController) List(c *fiber.Ctx) error {
	rows, err := repository.List(helper.ReqCtx(c), ctl.DB)
	if err != nil {
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(rows)
}

// GET /api/salles/:id
func (ctl *SalleController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, errSalleNotFound)
	}
	row, err := repository.FindByID(helper.ReqCtx(c), ctl.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonAppError(c, errSalleNotFound)
		}
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(row)
}

// GET /api/salles/slug/:slug
func (ctl *SalleController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonAppError(c, errSalleNotFound)
	}
	row, err := repository.FindBySlug(helper.ReqCtx(c), ctl.DB, slug)
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonAppError(c, errSalleNotFound)
		}
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(row)
}

/* =========================
   DELETE
   DELETE /api/salles/:id
========================= */

func (ctl *SalleController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, errSalleNotFound)
	}
	if err := repository.Delete(helper.ReqCtx(c), ctl.DB, id); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonAppError(c, errSalleNotFound)
		}
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(fiber.Map{"message": "Salle supprimée avec succès !"})
}
