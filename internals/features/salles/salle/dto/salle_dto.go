package dto

import (
	"strings"

	"securite2ie_backend/internals/features/salles/salle/model"
	"securite2ie_backend/internals/helpers/apperror"
	"securite2ie_backend/internals/helpers/dbtime"
)

/* =========================
   REQUEST
========================= */

type CreateSalleRequest struct {
	Nom            string `json:"nom" validate:"required,max=100"`
	Capacite       *int   `json:"capacite" validate:"required"`
	NombrePresents *int   `json:"nombre_presents"`
	HeureOuverture string `json:"heure_ouverture" validate:"required"`
	HeureFermeture string `json:"heure_fermeture" validate:"required"`
}

func (r *CreateSalleRequest) Normalize() {
	r.Nom = strings.TrimSpace(r.Nom)
	r.HeureOuverture = strings.TrimSpace(r.HeureOuverture)
	r.HeureFermeture = strings.TrimSpace(r.HeureFermeture)
}

// ToModel checks the business rules and builds the row. Slug is filled by the caller.
func (r CreateSalleRequest) ToModel() (model.SalleModel, error) {
	if r.Nom == "" || r.Capacite == nil || r.HeureOuverture == "" || r.HeureFermeture == "" {
		return model.SalleModel{}, apperror.Validation(apperror.CodeMissingFields, "Tous les champs sont obligatoires.")
	}
	if *r.Capacite <= 0 {
		return model.SalleModel{}, apperror.Validation(apperror.CodeMalformed, "La capacité doit être supérieure à 0.")
	}
	presents := 0
	if r.NombrePresents != nil {
		presents = *r.NombrePresents
	}
	if presents < 0 || presents > *r.Capacite {
		return model.SalleModel{}, apperror.Validation(apperror.CodeMalformed,
			"Le nombre de présents doit être entre 0 et la capacité.")
	}

	ouverture, err := dbtime.Parse(r.HeureOuverture)
	if err != nil {
		return model.SalleModel{}, apperror.Validation(apperror.CodeMalformed, "Heure d'ouverture invalide (HH:MM).")
	}
	fermeture, err := dbtime.Parse(r.HeureFermeture)
	if err != nil {
		return model.SalleModel{}, apperror.Validation(apperror.CodeMalformed, "Heure de fermeture invalide (HH:MM).")
	}
	if !fermeture.After(ouverture) {
		return model.SalleModel{}, apperror.Validation(apperror.CodeTimeOrder,
			"L'heure de fermeture doit être après l'heure d'ouverture.")
	}

	return model.SalleModel{
		Nom:            r.Nom,
		Capacite:       *r.Capacite,
		NombrePresents: presents,
		HeureOuverture: ouverture,
		HeureFermeture: fermeture,
	}, nil
}
