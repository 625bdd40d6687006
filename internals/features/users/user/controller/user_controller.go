// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/users/user/dto"
	"securite2ie_backend/internals/features/users/user/repository"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/helpers/apperror"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &UserController{DB: db, Validate: v}
}

// GET /api/users?admin=true
func (ctl *UserController) List(c *fiber.Ctx) error {
	adminOnly := c.Query("admin") == "true"
	rows, err := repository.List(helper.ReqCtx(c), ctl.DB, adminOnly)
	if err != nil {
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(dto.ToUserResponses(rows))
}

// GET /api/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, errUserNotFound)
	}
	user, err := repository.FindByID(helper.ReqCtx(c), ctl.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonAppError(c, errUserNotFound)
		}
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(dto.ToUserResponse(*user))
}

// PATCH /api/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.JsonAppError(c, errUserNotFound)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide.")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return helper.JsonAppError(c, apperror.Validation(apperror.CodeMissingFields, "Aucune mise à jour fournie."))
	}

	ctx := helper.ReqCtx(c)
	if err := repository.Update(ctx, ctl.DB, id, patch); err != nil {
		switch {
		case helper.IsNotFound(err):
			return helper.JsonAppError(c, errUserNotFound)
		case helper.IsUniqueViolation(err):
			return helper.JsonAppError(c, apperror.Conflict(apperror.CodeDuplicate,
				"Numéro d'inscription ou UID badge RFID déjà utilisé."))
		default:
			return helper.JsonAppError(c, apperror.Unexpected(err))
		}
	}

	user, err := repository.FindByID(ctx, ctl.DB, id)
	if err != nil {
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return helper.JsonOK(c, "Utilisateur mis à jour avec succès !", "user", dto.ToUserResponse(*user))
}

var errUserNotFound = apperror.NotFound(apperror.CodeUserNotFound, "Utilisateur non trouvé.")
