// file: internals/features/demandes/demande_acces/repository/demande_acces_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"securite2ie_backend/internals/features/demandes/demande_acces/model"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.DemandeAccesModel, error) {
	var d model.DemandeAccesModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByIDForUpdate row-locks the request inside tx.
func FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.DemandeAccesModel, error) {
	var d model.DemandeAccesModel
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// PendingForSlot returns the pending requests sharing user, room and date.
func PendingForSlot(ctx context.Context, tx *gorm.DB, userID, salleID uuid.UUID, date datatypes.Date) ([]model.DemandeAccesModel, error) {
	var rows []model.DemandeAccesModel
	err := tx.WithContext(ctx).
		Where("user_id = ? AND salle_id = ? AND date = ? AND statut_demande = ?",
			userID, salleID, date, model.StatusPending).
		Find(&rows).Error
	return rows, err
}

func Create(ctx context.Context, db *gorm.DB, d *model.DemandeAccesModel) error {
	return db.WithContext(ctx).Create(d).Error
}

// TransitionFromPending moves a pending row to statut. It reports false when
// the row was no longer pending.
func TransitionFromPending(ctx context.Context, tx *gorm.DB, id uuid.UUID, statut string, now time.Time) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&model.DemandeAccesModel{}).
		Where("id = ? AND statut_demande = ?", id, model.StatusPending).
		Updates(map[string]any{"statut_demande": statut, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.DemandeAccesModel, error) {
	var rows []model.DemandeAccesModel
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func ListByStatut(ctx context.Context, db *gorm.DB, statut string) ([]model.DemandeAccesModel, error) {
	var rows []model.DemandeAccesModel
	err := db.WithContext(ctx).
		Where("statut_demande = ?", statut).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// ListApproved feeds the statistics reporter.
func ListApproved(ctx context.Context, db *gorm.DB) ([]model.DemandeAccesModel, error) {
	return ListByStatut(ctx, db, model.StatusApproved)
}
