package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/movewell-api/internal/adapters/repository"
	"github.com/comitanigiacomo/movewell-api/internal/core/services"
)

type stubGenerator struct {
	reply string
	err   error
	block chan struct{}
	calls chan string
}

func (g *stubGenerator) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if g.calls != nil {
		g.calls <- prompt
	}
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type testApp struct {
	router    *gin.Engine
	store     *repository.InMemoryStore
	exercises *services.ExerciseService
	posture   *services.PostureService
	generator *stubGenerator
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewInMemoryStore()
	users := services.NewUserStore(store)
	tokens := services.NewTokenService("handler-test-secret", "movewell-test", time.Hour, users)

	exercises := services.NewExerciseService(store, time.UTC)
	posture := services.NewPostureService()
	generator := &stubGenerator{reply: "Keep your shoulders relaxed."}
	chat := services.NewChatService(generator)

	router := NewRouter(RouterDependencies{
		AuthHandler:        NewAuthHandler(services.NewSessionService(users, tokens, nil, chat)),
		ExerciseHandler:    NewExerciseHandler(exercises),
		DashboardHandler:   NewDashboardHandler(services.NewDashboardService(users, exercises), exercises),
		AppointmentHandler: NewAppointmentHandler(services.NewAppointmentService(store)),
		PostureHandler:     NewPostureHandler(posture),
		ChatHandler:        NewChatHandler(chat, time.Second),
		TokenService:       tokens,
		Store:              store,
		StoreName:          "memory",
		StartTime:          time.Now(),
	})

	return &testApp{
		router:    router,
		store:     store,
		exercises: exercises,
		posture:   posture,
		generator: generator,
	}
}

func (a *testApp) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// login opens a session and returns its token.
func (a *testApp) login(t *testing.T, email string) string {
	t.Helper()

	w := a.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "anything",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
