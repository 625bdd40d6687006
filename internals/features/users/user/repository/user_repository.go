// file: internals/features/users/user/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"securite2ie_backend/internals/features/users/user/model"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDForUpdate row-locks the user inside tx (no-op lock on SQLite).
func FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func Create(ctx context.Context, db *gorm.DB, user *model.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

// List returns every user, or only administrators when adminOnly is set.
func List(ctx context.Context, db *gorm.DB, adminOnly bool) ([]model.UserModel, error) {
	q := db.WithContext(ctx).Model(&model.UserModel{})
	if adminOnly {
		q = q.Where("isadmin = ?", true)
	}
	var rows []model.UserModel
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update applies a column → value patch; gorm.ErrRecordNotFound when no row matched.
func Update(ctx context.Context, db *gorm.DB, id uuid.UUID, patch map[string]any) error {
	res := db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
