package route

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"securite2ie_backend/internals/databases/dbtest"
	helper "securite2ie_backend/internals/helpers"
)

type env struct {
	app     *fiber.App
	db      *gorm.DB
	userID  string
	salleID string
	date    string
}

func setup(t *testing.T) env {
	t.Helper()
	db := dbtest.Open(t)
	u := dbtest.User(t, db, "awa@2ie.test")
	s := dbtest.Salle(t, db, "Salle A", "09:00", "18:00")

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	DemandeAccesRoutes(app.Group("/api"), db)

	return env{
		app:     app,
		db:      db,
		userID:  u.ID.String(),
		salleID: s.ID.String(),
		date:    time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
	}
}

func (e env) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (e env) submit(t *testing.T, debut, fin string) (int, map[string]any) {
	return e.do(t, http.MethodPost, "/api/demande-acces", map[string]any{
		"user_id":     e.userID,
		"salle_id":    e.salleID,
		"date":        e.date,
		"heure_debut": debut,
		"heure_fin":   fin,
		"motif":       "TP réseaux",
	})
}

func TestSubmitAndTransitionOverHTTP(t *testing.T) {
	e := setup(t)

	status, body := e.submit(t, "10:00", "11:00")
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "Demande d'accès soumise avec succès !", body["message"])
	demande := body["demande"].(map[string]any)
	assert.Equal(t, "en_attente", demande["statut_demande"])
	assert.Equal(t, e.date, demande["date"])
	assert.Equal(t, "10:00:00", demande["heure_debut"])
	id := demande["id"].(string)

	status, body = e.submit(t, "10:30", "11:30")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DUPLICATE_PENDING_REQUEST", body["error_code"])
	assert.Equal(t, false, body["success"])

	status, body = e.submit(t, "07:00", "08:00")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "OUTSIDE_ROOM_HOURS", body["error_code"])
	assert.Equal(t, "La salle est disponible de 09:00:00 à 18:00:00.", body["error"])

	status, body = e.do(t, http.MethodPatch, "/api/demande-acces/"+id+"/approuver", nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Demande approuvée avec succès !", body["message"])
	assert.Equal(t, "approuvee", body["demande"].(map[string]any)["statut_demande"])

	status, body = e.do(t, http.MethodPatch, "/api/demande-acces/"+id+"/rejeter", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NOT_PENDING", body["error_code"])
	assert.Equal(t, "La demande n'est plus en attente.", body["error"])

	status, body = e.do(t, http.MethodGet, "/api/demande-acces/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "approuvee", body["demande"].(map[string]any)["statut_demande"])
}

func TestSubmitMissingFields(t *testing.T) {
	e := setup(t)

	status, body := e.do(t, http.MethodPost, "/api/demande-acces", map[string]any{"user_id": e.userID})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MISSING_FIELDS", body["error_code"])
	assert.Equal(t,
		"Tous les champs (user_id, salle_id, date, heure_debut, heure_fin, motif) sont obligatoires.",
		body["error"])
}

func TestSubmitUnknownRoom(t *testing.T) {
	e := setup(t)
	e.salleID = uuid.NewString()

	status, body := e.submit(t, "10:00", "11:00")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Salle non trouvée.", body["error"])
}

func TestTransitionMalformedOrUnknownID(t *testing.T) {
	e := setup(t)

	status, body := e.do(t, http.MethodPatch, "/api/demande-acces/not-a-uuid/approuver", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "REQUEST_NOT_FOUND", body["error_code"])

	status, _ = e.do(t, http.MethodPatch, "/api/demande-acces/"+uuid.NewString()+"/rejeter", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListEndpoints(t *testing.T) {
	e := setup(t)

	status, body := e.do(t, http.MethodGet, "/api/demande-acces/user/"+e.userID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Aucune demande trouvée pour cet utilisateur.", body["error"])

	status, _ = e.submit(t, "10:00", "11:00")
	require.Equal(t, http.StatusCreated, status)

	status, body = e.do(t, http.MethodGet, "/api/demande-acces/user/"+e.userID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Demandes récupérées avec succès !", body["message"])
	assert.Len(t, body["demandes"], 1)

	status, body = e.do(t, http.MethodGet, "/api/demande-acces", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["demandes"], 1)

	status, body = e.do(t, http.MethodGet, "/api/demande-acces?statut=approuvee", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["demandes"], 0)
}
