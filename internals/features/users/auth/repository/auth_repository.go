// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "securite2ie_backend/internals/features/users/auth/model"
)

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken is idempotent: logging out twice with the same token is fine.
func BlacklistToken(ctx context.Context, db *gorm.DB, token string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: expiredAt.UTC(),
		}).Error
}

func IsBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ?", token).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CleanupExpiredBlacklist hard-deletes entries whose token can no longer be used.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Unscoped().
		Where("expired_at <= ?", now.UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
