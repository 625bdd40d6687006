package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Accepted values for users.statut.
const (
	StatutEtudiant    = "Étudiant"
	StatutProfesseur  = "Professeur"
	StatutStagiaire   = "Stagiaire"
	StatutTravailleur = "Travailleur 2iE"
)

var Statuts = []string{StatutEtudiant, StatutProfesseur, StatutStagiaire, StatutTravailleur}

func IsValidStatut(s string) bool {
	for _, v := range Statuts {
		if v == s {
			return true
		}
	}
	return false
}

// UserModel maps the users table. Password holds the bcrypt hash and is
// never serialized.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nom               string    `gorm:"size:100;not null" json:"nom"`
	Prenom            string    `gorm:"size:100;not null" json:"prenom"`
	Statut            string    `gorm:"size:30;not null" json:"statut"`
	Email             string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password          string    `gorm:"not null" json:"-"`
	NumeroInscription *string   `gorm:"column:numero_inscription;size:50;uniqueIndex" json:"numero_inscription"`
	UIDBadgeRFID      *string   `gorm:"column:uid_badge_rfid;size:50;uniqueIndex" json:"uid_badge_rfid"`
	Etat              bool      `gorm:"not null;default:true" json:"etat"`
	IsAdmin           bool      `gorm:"column:isadmin;not null;default:false" json:"isadmin"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
