package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"securite2ie_backend/internals/features/demandes/demande_acces/model"
	"securite2ie_backend/internals/helpers/dbtime"
)

/* =========================
   REQUEST
========================= */

// CreateDemandeAccesRequest is the submit body. Fields stay strings so the
// ledger can tell a missing value from a malformed one.
type CreateDemandeAccesRequest struct {
	UserID     string `json:"user_id"`
	SalleID    string `json:"salle_id"`
	Date       string `json:"date"`
	HeureDebut string `json:"heure_debut"`
	HeureFin   string `json:"heure_fin"`
	Motif      string `json:"motif"`
}

func (r *CreateDemandeAccesRequest) Normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.SalleID = strings.TrimSpace(r.SalleID)
	r.Date = strings.TrimSpace(r.Date)
	r.HeureDebut = strings.TrimSpace(r.HeureDebut)
	r.HeureFin = strings.TrimSpace(r.HeureFin)
	r.Motif = strings.TrimSpace(r.Motif)
}

/* =========================
   RESPONSE
========================= */

type DemandeAccesResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	SalleID       uuid.UUID  `json:"salle_id"`
	Date          string     `json:"date"`
	HeureDebut    dbtime.Tod `json:"heure_debut"`
	HeureFin      dbtime.Tod `json:"heure_fin"`
	Motif         string     `json:"motif"`
	StatutDemande string     `json:"statut_demande"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToResponse(m model.DemandeAccesModel) DemandeAccesResponse {
	return DemandeAccesResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		SalleID:       m.SalleID,
		Date:          dbtime.FormatDate(m.Date),
		HeureDebut:    m.HeureDebut,
		HeureFin:      m.HeureFin,
		Motif:         m.Motif,
		StatutDemande: m.StatutDemande,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToResponses(rows []model.DemandeAccesModel) []DemandeAccesResponse {
	out := make([]DemandeAccesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToResponse(r))
	}
	return out
}
