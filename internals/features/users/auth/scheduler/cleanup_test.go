package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securite2ie_backend/internals/databases/dbtest"
	authModel "securite2ie_backend/internals/features/users/auth/model"
	authRepo "securite2ie_backend/internals/features/users/auth/repository"
)

func TestRunBlacklistCleanup(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, authRepo.BlacklistToken(ctx, db, "expired", now.Add(-time.Minute)))
	require.NoError(t, authRepo.BlacklistToken(ctx, db, "live", now.Add(time.Hour)))

	RunBlacklistCleanup(db, now)

	var left []authModel.TokenBlacklist
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "live", left[0].Token)
}

func TestSchedulerRejectsBadCronExpr(t *testing.T) {
	_, err := StartBlacklistCleanupScheduler(nil, "every tuesday-ish")
	assert.Error(t, err)

	c, err := StartBlacklistCleanupScheduler(nil, "@every 24h")
	require.NoError(t, err)
	<-c.Stop().Done()
}
