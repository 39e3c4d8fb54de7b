package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

func TestPostureHandler(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "posture@example.com")

	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	app.posture.SetSource(func() time.Time { return now }, func() float64 { return 0.1 })

	w := app.do(http.MethodPost, "/api/v1/posture/session/sample", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodPost, "/api/v1/posture/session", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	now = now.Add(5 * time.Second)
	w = app.do(http.MethodPost, "/api/v1/posture/session/sample", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sample := decode[domain.PostureSession](t, w)
	assert.Equal(t, domain.PosturePoor, sample.Current)
	assert.Equal(t, 1, sample.Warnings)

	w = app.do(http.MethodDelete, "/api/v1/posture/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[domain.PostureSession](t, w).ElapsedSeconds)

	w = app.do(http.MethodDelete, "/api/v1/posture/session", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
