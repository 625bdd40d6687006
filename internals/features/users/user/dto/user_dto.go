// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"securite2ie_backend/internals/features/users/user/model"
)

/* ========== REGISTER ========== */

type RegisterRequest struct {
	Nom               string  `json:"nom" validate:"required,max=100"`
	Prenom            string  `json:"prenom" validate:"required,max=100"`
	Statut            string  `json:"statut"`
	Email             string  `json:"email" validate:"required,email,max=255"`
	Password          string  `json:"password" validate:"required"`
	NumeroInscription *string `json:"numero_inscription" validate:"omitempty,max=50"`
	UIDBadgeRFID      *string `json:"uid_badge_rfid" validate:"omitempty,max=50"`
	IsAdmin           bool    `json:"isadmin"`
}

func (r *RegisterRequest) Normalize() {
	r.Nom = strings.TrimSpace(r.Nom)
	r.Prenom = strings.TrimSpace(r.Prenom)
	r.Statut = strings.TrimSpace(r.Statut)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.NumeroInscription = trimOrNil(r.NumeroInscription)
	r.UIDBadgeRFID = trimOrNil(r.UIDBadgeRFID)
}

// ToModel leaves Password empty; the caller stores the hash.
func (r RegisterRequest) ToModel() model.UserModel {
	return model.UserModel{
		Nom:               r.Nom,
		Prenom:            r.Prenom,
		Statut:            r.Statut,
		Email:             r.Email,
		NumeroInscription: r.NumeroInscription,
		UIDBadgeRFID:      r.UIDBadgeRFID,
		Etat:              true,
		IsAdmin:           r.IsAdmin,
	}
}

/* ========== LOGIN ========== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/* ========== UPDATE (PATCH) ========== */

type UpdateUserRequest struct {
	Etat              *bool   `json:"etat"`
	IsAdmin           *bool   `json:"isadmin"`
	NumeroInscription *string `json:"numero_inscription" validate:"omitempty,max=50"`
	UIDBadgeRFID      *string `json:"uid_badge_rfid" validate:"omitempty,max=50"`
}

// ToPatch returns only the provided columns; empty means nothing to update.
func (r UpdateUserRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Etat != nil {
		patch["etat"] = *r.Etat
	}
	if r.IsAdmin != nil {
		patch["isadmin"] = *r.IsAdmin
	}
	if r.NumeroInscription != nil {
		patch["numero_inscription"] = trimOrNil(r.NumeroInscription)
	}
	if r.UIDBadgeRFID != nil {
		patch["uid_badge_rfid"] = trimOrNil(r.UIDBadgeRFID)
	}
	return patch
}

/* ========== RESPONSES ========== */

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Nom               string    `json:"nom"`
	Prenom            string    `json:"prenom"`
	Statut            string    `json:"statut"`
	Email             string    `json:"email"`
	NumeroInscription *string   `json:"numero_inscription"`
	UIDBadgeRFID      *string   `json:"uid_badge_rfid"`
	Etat              bool      `json:"etat"`
	IsAdmin           bool      `json:"isadmin"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		ID:                m.ID,
		Nom:               m.Nom,
		Prenom:            m.Prenom,
		Statut:            m.Statut,
		Email:             m.Email,
		NumeroInscription: m.NumeroInscription,
		UIDBadgeRFID:      m.UIDBadgeRFID,
		Etat:              m.Etat,
		IsAdmin:           m.IsAdmin,
	}
}

func ToUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToUserResponse(m))
	}
	return out
}

// LoginUser is the subset returned next to the token.
type LoginUser struct {
	ID      uuid.UUID `json:"id"`
	Nom     string    `json:"nom"`
	Prenom  string    `json:"prenom"`
	Statut  string    `json:"statut"`
	IsAdmin bool      `json:"isadmin"`
}

func ToLoginUser(m model.UserModel) LoginUser {
	return LoginUser{ID: m.ID, Nom: m.Nom, Prenom: m.Prenom, Statut: m.Statut, IsAdmin: m.IsAdmin}
}

func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
