package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"securite2ie_backend/internals/helpers/dbtime"
)

// statut_demande values. pending is the only non-terminal state.
const (
	StatusPending  = "en_attente"
	StatusApproved = "approuvee"
	StatusRejected = "rejetee"
)

type DemandeAccesModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_demande_user_salle_date,priority:1" json:"user_id"`
	SalleID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_demande_user_salle_date,priority:2" json:"salle_id"`
	Date          datatypes.Date `gorm:"not null;index:idx_demande_user_salle_date,priority:3" json:"date"`
	HeureDebut    dbtime.Tod     `gorm:"type:time;column:heure_debut;not null" json:"heure_debut"`
	HeureFin      dbtime.Tod     `gorm:"type:time;column:heure_fin;not null" json:"heure_fin"`
	Motif         string         `gorm:"type:text;not null" json:"motif"`
	StatutDemande string         `gorm:"column:statut_demande;size:20;not null;default:en_attente;index" json:"statut_demande"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DemandeAccesModel) TableName() string {
	return "demande_acces"
}

func (d *DemandeAccesModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (d DemandeAccesModel) IsPending() bool {
	return d.StatutDemande == StatusPending
}
