package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

func TestChatHandler_Send(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := newTestApp(t)
		token := app.login(t, "chat@example.com")

		w := app.do(http.MethodPost, "/api/v1/chat/messages", token, map[string]string{"message": "How can I improve my posture?"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Keep your shoulders relaxed.", decode[sendMessageResponse](t, w).Reply)
	})

	t.Run("Generator failure is still a reply", func(t *testing.T) {
		app := newTestApp(t)
		app.generator.err = errors.New("status 429: quota exceeded")
		token := app.login(t, "chat@example.com")

		w := app.do(http.MethodPost, "/api/v1/chat/messages", token, map[string]string{"message": "hi"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.ReplyQuotaExceeded, decode[sendMessageResponse](t, w).Reply)
	})

	t.Run("Fail: empty message", func(t *testing.T) {
		app := newTestApp(t)
		token := app.login(t, "chat@example.com")

		w := app.do(http.MethodPost, "/api/v1/chat/messages", token, map[string]string{"message": "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: reply already pending", func(t *testing.T) {
		app := newTestApp(t)
		app.generator.block = make(chan struct{})
		app.generator.calls = make(chan string, 1)
		token := app.login(t, "chat@example.com")

		first := make(chan *httptest.ResponseRecorder, 1)
		go func() {
			first <- app.do(http.MethodPost, "/api/v1/chat/messages", token, map[string]string{"message": "first"})
		}()
		<-app.generator.calls

		w := app.do(http.MethodPost, "/api/v1/chat/messages", token, map[string]string{"message": "second"})
		assert.Equal(t, http.StatusConflict, w.Code)

		close(app.generator.block)
		assert.Equal(t, http.StatusOK, (<-first).Code)
	})
}

func TestChatHandler_StartersAndReset(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "chat@example.com")

	w := app.do(http.MethodGet, "/api/v1/chat/starters", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.ChatGreeting)

	w = app.do(http.MethodDelete, "/api/v1/chat/messages", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"connected"`)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
}
