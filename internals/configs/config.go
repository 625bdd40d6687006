package configs

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"securite2ie_backend/internals/logging"
)

var (
	JWTSecret     string
	JWTTTL        time.Duration
	AuthEnforce   bool
	RedisURL      string
	AppTimezone   string
	AppLocation   *time.Location
	CorsOrigins   string
	CleanupCron   string
	DBMaxOpenConn int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logging.Warn("⚠️ .env file not found, using system environment")
		} else {
			logging.Info("✅ .env file loaded")
		}
	} else {
		logging.Info("🚀 Running in Railway, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTTTL = GetEnvDuration("JWT_TTL", time.Hour)
	AuthEnforce = GetEnvBool("AUTH_ENFORCE", false)
	RedisURL = GetEnv("REDIS_URL")
	AppTimezone = GetEnv("APP_TIMEZONE", "Africa/Ouagadougou")
	AppLocation = LoadLocation(AppTimezone)
	CorsOrigins = GetEnv("CORS_ALLOW_ORIGINS", "*")
	CleanupCron = GetEnv("TOKEN_BLACKLIST_CLEANUP_CRON", "@every 24h")
	DBMaxOpenConn = GetEnvInt("DB_MAX_OPEN_CONNS", 10)

	if JWTSecret == "" {
		logging.Warn("❌ JWT_SECRET is not set")
	} else {
		logging.Info("✅ JWT_SECRET loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// LoadLocation falls back to UTC when the zone database has no entry.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logging.Warn("unknown timezone, using UTC", zap.String("timezone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

// Location is safe to call before LoadEnv (tests).
func Location() *time.Location {
	if AppLocation == nil {
		return time.UTC
	}
	return AppLocation
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		logging.Log.Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		logging.Log.Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		logging.Log.Sugar().Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("file", utils.FileWithLineNum()),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		// not-found is a normal outcome for lookups
		if errors.Is(err, gormLogger.ErrRecordNotFound) {
			return
		}
		logging.Error("[SQL ERROR]", append(fields, zap.Error(err))...)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		logging.Warn("[SLOW SQL]", fields...)
	case l.LogLevel >= gormLogger.Info:
		logging.Debug("[QUERY]", fields...)
	}
}
