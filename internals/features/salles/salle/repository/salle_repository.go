// file: internals/features/salles/salle/repository/salle_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/salles/salle/model"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.SalleModel, error) {
	var s model.SalleModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.SalleModel, error) {
	var s model.SalleModel
	if err := db.WithContext(ctx).Where("LOWER(slug) = LOWER(?)", slug).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func List(ctx context.Context, db *gorm.DB) ([]model.SalleModel, error) {
	var rows []model.SalleModel
	if err := db.WithContext(ctx).Order("nom ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func Create(ctx context.Context, db *gorm.DB, s *model.SalleModel) error {
	return db.WithContext(ctx).Create(s).Error
}

// Delete removes the room; gorm.ErrRecordNotFound when nothing matched.
func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.SalleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
