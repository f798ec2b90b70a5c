package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/maydeploy/event-feedback-app/internal/di"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/internal/router"
	"github.com/maydeploy/event-feedback-app/internal/session"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

const adminPassword = "correct horse"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the full router against in-memory storage
func newTestServer(t *testing.T) (*gin.Engine, *di.Container) {
	t.Helper()

	log, err := logger.New(logger.DefaultConfig())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	store := session.NewMemoryStore(30 * time.Minute)
	store.Stop()

	container := di.NewContainer(&di.ContainerConfig{
		Sessions:          store,
		SubmissionRepo:    repository.NewMemorySubmissionRepository(),
		CollaborationRepo: repository.NewMemoryCollaborationRepository(),
		EventRepo:         repository.NewMemoryEventRepository(),
		RateLimitRepo:     repository.NewMemoryRateLimitRepository(),
		Logger:            log,
		AdminPasswordHash: string(hash),
		SessionSecret:     "test-secret",
	})

	engine := router.New(container, &router.Config{})
	return engine, container
}

type requestOptions struct {
	sessionID string
	cookies   []*http.Cookie
}

func doJSON(engine *gin.Engine, method, path string, body interface{}, opts requestOptions) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if opts.sessionID != "" {
		req.Header.Set("X-Session-ID", opts.sessionID)
	}
	for _, c := range opts.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// decodeEnvelope unmarshals the response envelope, failing on invalid JSON
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()
	var env response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return &env
}

// dataField re-decodes the envelope's data into out
func dataField(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// loginAdmin authenticates and returns the session cookie
func loginAdmin(t *testing.T, engine *gin.Engine) *http.Cookie {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/api/admin/login", gin.H{"password": adminPassword}, requestOptions{})
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	t.Fatal("login response carries no admin_session cookie")
	return nil
}
