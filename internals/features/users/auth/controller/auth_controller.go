package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"securite2ie_backend/internals/configs"
	"securite2ie_backend/internals/features/users/auth/service"
	userDTO "securite2ie_backend/internals/features/users/user/dto"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/helpers/apperror"
	"securite2ie_backend/internals/logging"
	"securite2ie_backend/internals/metrics"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Secret   string
	TTL      time.Duration
	Now      func() time.Time
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Secret:   configs.JWTSecret,
		TTL:      configs.JWTTTL,
		Now:      time.Now,
	}
}

// POST /api/users/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide.")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonAppError(c, apperror.Validation(apperror.CodeMissingFields,
			"Tous les champs obligatoires doivent être remplis."))
	}

	user, err := service.Register(helper.ReqCtx(c), ac.DB, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Utilisateur inscrit avec succès !", "user", userDTO.ToUserResponse(*user))
}

// POST /api/users/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide.")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email et mot de passe requis.")
	}

	token, user, err := service.Login(helper.ReqCtx(c), ac.DB, req, ac.Secret, ac.TTL, ac.Now())
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou mot de passe incorrect.")
	case errors.Is(err, service.ErrAccountInactive):
		metrics.LoginAttempts.WithLabelValues("inactive").Inc()
		return helper.JsonError(c, fiber.StatusForbidden, "Compte inactif. Contactez un administrateur.")
	case err != nil:
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{
		"message": "Connexion réussie !",
		"token":   token,
		"user":    userDTO.ToLoginUser(*user),
	})
}

// POST /api/users/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Jeton manquant.")
	}
	if err := service.Logout(helper.ReqCtx(c), ac.DB, raw, ac.Secret); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Jeton invalide.")
		}
		logging.Error("logout failed", zap.Error(err))
		return helper.JsonAppError(c, apperror.Unexpected(err))
	}
	return c.JSON(fiber.Map{"message": "Déconnexion réussie !"})
}
