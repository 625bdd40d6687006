package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "securite2ie_backend/internals/features/users/auth/repository"
	"securite2ie_backend/internals/logging"
	"securite2ie_backend/internals/metrics"
)

// RunBlacklistCleanup removes blacklist rows whose tokens have expired.
func RunBlacklistCleanup(db *gorm.DB, now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logging.Info("[CLEANUP] purging token_blacklist")
	n, err := authRepo.CleanupExpiredBlacklist(ctx, db, now)
	if err != nil {
		logging.Error("[CLEANUP ERROR] token_blacklist purge failed", zap.Error(err))
		return
	}
	metrics.BlacklistPurged.Add(float64(n))
	logging.Info("[CLEANUP] expired tokens removed", zap.Int64("count", n))
}

// StartBlacklistCleanupScheduler registers the purge on expr (cron syntax or
// "@every 24h"). The returned cron must be stopped on shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB, expr string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(expr, func() { RunBlacklistCleanup(db, time.Now()) }); err != nil {
		return nil, err
	}
	c.Start()
	logging.Info("[CLEANUP] blacklist cleanup scheduled", zap.String("expr", expr))
	return c, nil
}
