// Package dbtest opens migrated in-memory SQLite databases for package tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "securite2ie_backend/internals/databases"
	salleModel "securite2ie_backend/internals/features/salles/salle/model"
	userModel "securite2ie_backend/internals/features/users/user/model"
	"securite2ie_backend/internals/helpers/dbtime"
)

var seq atomic.Int64

// Open returns a fresh schema. The pool holds one connection so concurrent
// transactions queue the way row locks make them queue on Postgres.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// User inserts an active, non-admin user.
func User(t testing.TB, db *gorm.DB, email string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Nom:      "Ouedraogo",
		Prenom:   "Awa",
		Statut:   userModel.StatutEtudiant,
		Email:    email,
		Password: "not-a-hash",
		Etat:     true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// Salle inserts a room open from ouverture to fermeture ("HH:MM").
func Salle(t testing.TB, db *gorm.DB, nom, ouverture, fermeture string) salleModel.SalleModel {
	t.Helper()
	s := salleModel.SalleModel{
		Nom:            nom,
		Slug:           strings.ToLower(strings.ReplaceAll(nom, " ", "-")),
		Capacite:       40,
		NombrePresents: 10,
		HeureOuverture: dbtime.MustParse(ouverture),
		HeureFermeture: dbtime.MustParse(fermeture),
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}
