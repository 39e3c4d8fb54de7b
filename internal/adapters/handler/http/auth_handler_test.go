package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("Success: Should return 201 with user and token", func(t *testing.T) {
		app := newTestApp(t)

		w := app.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
			"firstName": "Maria",
			"lastName":  "Rossi",
			"email":     "maria@example.com",
			"password":  "secret",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decode[struct {
			User  domain.User `json:"user"`
			Token string      `json:"token"`
		}](t, w)
		assert.Equal(t, "Maria Rossi", resp.User.Name)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Fail: Missing first name", func(t *testing.T) {
		app := newTestApp(t)

		w := app.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
			"email":    "maria@example.com",
			"password": "secret",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "first name is required")
	})

	t.Run("Fail: Invalid email", func(t *testing.T) {
		app := newTestApp(t)

		w := app.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
			"firstName": "Maria",
			"email":     "maria-at-example",
			"password":  "secret",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success: Default profile", func(t *testing.T) {
		app := newTestApp(t)
		token := app.login(t, "alex@example.com")

		w := app.do(http.MethodGet, "/api/v1/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		user := decode[domain.User](t, w)
		assert.Equal(t, domain.DefaultUserName, user.Name)
		assert.Equal(t, "alex@example.com", user.Email)
	})

	t.Run("Fail: Missing password", func(t *testing.T) {
		app := newTestApp(t)

		w := app.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@b.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: Malformed JSON", func(t *testing.T) {
		app := newTestApp(t)

		w := app.do(http.MethodPost, "/api/v1/auth/login", "", "not an object")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_ProfileAndLogout(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "pat@example.com")

	w := app.do(http.MethodPatch, "/api/v1/me", token, map[string]string{"name": "Pat Doe"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pat Doe", decode[domain.User](t, w).Name)

	w = app.do(http.MethodPatch, "/api/v1/me", token, map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodGet, "/api/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "token of a logged out user is rejected")
}

func TestAuthHandler_EmailChange(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "first@example.com")
	app.login(t, "taken@example.com")

	w := app.do(http.MethodGet, "/api/v1/me", token, nil)
	id := decode[domain.User](t, w).ID

	w = app.do(http.MethodPatch, "/api/v1/me", token, map[string]string{"email": "taken@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(http.MethodPatch, "/api/v1/me", token, map[string]string{"email": "moved@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	moved := app.login(t, "moved@example.com")
	w = app.do(http.MethodGet, "/api/v1/me", moved, nil)
	assert.Equal(t, id, decode[domain.User](t, w).ID)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/me", "/api/v1/home", "/api/v1/stats", "/api/v1/appointments", "/api/v1/exercises"} {
		w := app.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := app.do(http.MethodGet, "/api/v1/doctors", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "doctor catalog is public")
}
