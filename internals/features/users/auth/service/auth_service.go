package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "securite2ie_backend/internals/features/users/auth/repository"
	userDTO "securite2ie_backend/internals/features/users/user/dto"
	userModel "securite2ie_backend/internals/features/users/user/model"
	userRepo "securite2ie_backend/internals/features/users/user/repository"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/helpers/apperror"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSecret      = errors.New("JWT_SECRET is not set")
)

// Claims carried by access tokens.
type Claims struct {
	UserID  uuid.UUID `json:"userId"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isadmin"`
	jwt.RegisteredClaims
}

/* ==========================
   Passwords
========================== */

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

/* ==========================
   REGISTER
========================== */

func Register(ctx context.Context, db *gorm.DB, req userDTO.RegisterRequest) (*userModel.UserModel, error) {
	if !userModel.IsValidStatut(req.Statut) {
		return nil, apperror.Validation(apperror.CodeMalformed, "Statut invalide.").
			WithDetails(map[string]any{"statuts": userModel.Statuts})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Unexpected(fmt.Errorf("hash password: %w", err))
	}

	user := req.ToModel()
	user.Password = hash
	if err := userRepo.Create(ctx, db, &user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperror.Conflict(apperror.CodeDuplicate,
				"Email, numéro d'inscription ou UID badge RFID déjà utilisé.")
		}
		return nil, apperror.Unexpected(err)
	}
	return &user, nil
}

/* ==========================
   LOGIN / TOKENS
========================== */

// Login checks credentials first and the active flag second, so an inactive
// account is only revealed to someone who knows its password.
func Login(ctx context.Context, db *gorm.DB, req userDTO.LoginRequest, secret string, ttl time.Duration, now time.Time) (string, *userModel.UserModel, error) {
	user, err := userRepo.FindByEmail(ctx, db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if helper.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Etat {
		return "", nil, ErrAccountInactive
	}

	token, err := IssueToken(*user, secret, ttl, now)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func IssueToken(user userModel.UserModel, secret string, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	claims := Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry.
func ParseToken(raw, secret string) (*Claims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout blacklists raw until its own expiry.
func Logout(ctx context.Context, db *gorm.DB, raw, secret string) error {
	claims, err := ParseToken(raw, secret)
	if err != nil {
		return err
	}
	exp := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return authRepo.BlacklistToken(ctx, db, raw, exp)
}
