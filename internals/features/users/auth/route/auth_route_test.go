package route

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securite2ie_backend/internals/configs"
	"securite2ie_backend/internals/databases/dbtest"
	helper "securite2ie_backend/internals/helpers"
)

func post(t *testing.T, app *fiber.App, path, token string, body any) (int, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestRegisterLoginLogout(t *testing.T) {
	configs.JWTSecret = "route-test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	db := dbtest.Open(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	AuthRoutes(app.Group("/api"), db)

	status, body := post(t, app, "/api/users/register", "", map[string]any{
		"nom":      "Sawadogo",
		"prenom":   "Mariam",
		"statut":   "Stagiaire",
		"email":    "mariam@2ie.test",
		"password": "motdepasse",
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "Utilisateur inscrit avec succès !", body["message"])
	user := body["user"].(map[string]any)
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	status, body = post(t, app, "/api/users/login", "", map[string]any{"email": "mariam@2ie.test", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Email ou mot de passe incorrect.", body["error"])

	status, body = post(t, app, "/api/users/login", "", map[string]any{"email": "mariam@2ie.test", "password": "motdepasse"})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Connexion réussie !", body["message"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, body = post(t, app, "/api/users/logout", token, map[string]any{})
	assert.Equal(t, http.StatusOK, status, body)

	status, _ = post(t, app, "/api/users/logout", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, status)
}
