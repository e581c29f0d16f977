package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypetvenues/services/api/internal/config"
	"github.com/mypetvenues/services/api/internal/infrastructure/seed"
)

func newTestServer() *Server {
	cfg := config.Config{
		Addr:           ":0",
		Timezone:       "UTC",
		AllowedOrigins: []string{"https://app.example.com"},
		ServerLog:      log.New(io.Discard, "", 0),
	}
	return New(cfg, seed.Default())
}

func TestHealthz(t *testing.T) {
	router := newTestServer().Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(6), resp["venues"])
	assert.NotEmpty(t, resp["time"])
}

func TestRoutes_PublicAndAdminMounted(t *testing.T) {
	router := newTestServer().Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/venues", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/bookings", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCORS_AllowedOriginGetsHeaders(t *testing.T) {
	router := newTestServer().Routes()

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	req.Header.Set("Origin", "https://app.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://app.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOriginGetsNoHeaders(t *testing.T) {
	router := newTestServer().Routes()

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightIsNoContent(t *testing.T) {
	router := newTestServer().Routes()

	req := httptest.NewRequest(http.MethodOptions, "/venues", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://app.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestWildcardOrigins(t *testing.T) {
	cfg := config.Config{
		Addr:           ":0",
		Timezone:       "UTC",
		AllowedOrigins: []string{"*"},
		ServerLog:      log.New(io.Discard, "", 0),
	}
	router := New(cfg, seed.Default()).Routes()

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://anything.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}
