package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spalatorie/internal/admin/session"
	"spalatorie/pkg/config"
	"spalatorie/pkg/logger"
	"spalatorie/pkg/pin"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})

	hash, err := pin.Hash("secret-password")
	require.NoError(t, err)

	cfg := &config.Config{
		Log:               log,
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: hash,
	}

	sessions, err := session.NewManager(testSessionKey, time.Hour)
	require.NoError(t, err)

	router := httprouter.New()
	NewAdminHandler(sessions, cfg, log).RegisterRoutes(router)
	return router
}

func TestLogin_Success(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"admin@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// The issued cookie authenticates the session endpoint.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/session", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		IsAdmin bool `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsAdmin)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"email":"admin@example.com","password":"wrong"}`,
		`{"email":"other@example.com","password":"secret-password"}`,
		`{"email":"","password":""}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "body: %s", body)
		assert.Empty(t, w.Result().Cookies(), "no cookie on failed login")
	}
}

func TestSession_WithoutCookie(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		IsAdmin bool `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsAdmin)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
