// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"securite2ie_backend/internals/configs"
	authRepo "securite2ie_backend/internals/features/users/auth/repository"
	authService "securite2ie_backend/internals/features/users/auth/service"
	userRepo "securite2ie_backend/internals/features/users/user/repository"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/logging"
)

const (
	LocUserID  = "user_id"
	LocEmail   = "email"
	LocIsAdmin = "is_admin"
)

// AuthJWT accepts a bearer token (header or access_token cookie) that is
// signed, unexpired, not blacklisted and owned by an active user.
func AuthJWT(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Jeton manquant.")
		}
		ctx := helper.ReqCtx(c)

		// 1) blacklist
		black, err := authRepo.IsBlacklisted(ctx, db, raw)
		if err != nil {
			logging.Error("blacklist lookup failed", zap.Error(err))
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur.")
		}
		if black {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Jeton révoqué.")
		}

		// 2) signature + exp
		claims, err := authService.ParseToken(raw, configs.JWTSecret)
		if err != nil {
			if errors.Is(err, authService.ErrMissingSecret) {
				logging.Error("JWT_SECRET is empty")
				return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur.")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Jeton invalide ou expiré.")
		}

		// 3) the user must still exist and be active
		user, err := userRepo.FindByID(ctx, db, claims.UserID)
		if err != nil {
			if helper.IsNotFound(err) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Utilisateur non trouvé.")
			}
			logging.Error("user lookup failed", zap.Error(err))
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur.")
		}
		if !user.Etat {
			return helper.JsonError(c, fiber.StatusForbidden, "Compte inactif. Contactez un administrateur.")
		}

		helper.SetRawAccessToken(c, raw)
		c.Locals(LocUserID, user.ID.String())
		c.Locals(LocEmail, user.Email)
		// read from the row so a revoked admin flag takes effect before token expiry
		c.Locals(LocIsAdmin, user.IsAdmin)
		return c.Next()
	}
}

// AdminOnly must run after AuthJWT.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals(LocIsAdmin).(bool); !isAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Accès réservé aux administrateurs.")
		}
		return c.Next()
	}
}

// AdminGuard returns the handlers to put in front of administrative routes:
// none unless AUTH_ENFORCE is on.
func AdminGuard(db *gorm.DB) []fiber.Handler {
	if !configs.AuthEnforce {
		return nil
	}
	return []fiber.Handler{AuthJWT(db), AdminOnly()}
}
