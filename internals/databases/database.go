package database

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"securite2ie_backend/internals/configs"
	authModel "securite2ie_backend/internals/features/users/auth/model"
	userModel "securite2ie_backend/internals/features/users/user/model"
	demandeModel "securite2ie_backend/internals/features/demandes/demande_acces/model"
	salleModel "securite2ie_backend/internals/features/salles/salle/model"
	"securite2ie_backend/internals/logging"
)

var DB *gorm.DB

func ConnectDB() {
	logging.Info("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=securite2ie&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		logging.Fatal("❌ DB connection failed", zap.Error(err))
	}
	DB = db
	logging.Info("✅ DB connected.")
}

// TunePool bounds the shared pool; every request borrows from it.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logging.Error("pool tune err", zap.Error(err))
		return
	}
	maxOpen := configs.DBMaxOpenConn
	if maxOpen <= 0 {
		maxOpen = 10
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen / 2)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&salleModel.SalleModel{},
		&demandeModel.DemandeAccesModel{},
		&authModel.TokenBlacklist{},
	)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(DB); err != nil {
			logging.Warn("warm-up ping err", zap.Error(err))
		}
	}()
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
