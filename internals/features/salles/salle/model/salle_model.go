package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"securite2ie_backend/internals/helpers/dbtime"
)

// SalleModel is a bookable room with its daily opening window.
type SalleModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Nom            string     `gorm:"size:100;uniqueIndex;not null" json:"nom"`
	Slug           string     `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Capacite       int        `gorm:"not null" json:"capacite"`
	NombrePresents int        `gorm:"not null;default:0" json:"nombre_presents"`
	HeureOuverture dbtime.Tod `gorm:"type:time;column:heure_ouverture;not null" json:"heure_ouverture"`
	HeureFermeture dbtime.Tod `gorm:"type:time;column:heure_fermeture;not null" json:"heure_fermeture"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SalleModel) TableName() string {
	return "salles"
}

func (s *SalleModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
