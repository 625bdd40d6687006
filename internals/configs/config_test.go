package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "")
	t.Setenv("X_INT", "12")
	t.Setenv("X_BAD_INT", "douze")
	t.Setenv("X_BOOL", "Yes")
	t.Setenv("X_DUR", "90m")

	assert.Equal(t, "fallback", GetEnv("X_STR", "fallback"))
	assert.Equal(t, 12, GetEnvInt("X_INT", 1))
	assert.Equal(t, 1, GetEnvInt("X_BAD_INT", 1))
	assert.True(t, GetEnvBool("X_BOOL", false))
	assert.True(t, GetEnvBool("X_UNSET_BOOL", true))
	assert.Equal(t, 90*time.Minute, GetEnvDuration("X_DUR", time.Hour))
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("Mars/Olympus_Mons"))
}
