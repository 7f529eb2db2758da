package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videohub-backend/internal/config"
	"videohub-backend/internal/domains/video/repository"
	"videohub-backend/pkg/container"
)

// stubConnection reports a fixed health
type stubConnection struct {
	name string
	err  error
}

func (s stubConnection) Name() string { return s.name }

func (s stubConnection) HealthCheck(context.Context) error { return s.err }

func (s stubConnection) Close(context.Context) error { return nil }

func setupTestRouter(conn stubConnection) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		App:   config.AppConfig{Name: "test", Environment: "test", Port: "3000", Version: "9.9.9"},
		Store: config.StoreConfig{Driver: config.DriverMemory},
	}
	return SetupRouter(container.Build(cfg, conn, repository.NewMemoryRepository()))
}

func TestStatusLine(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "MongoDB"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running... MongoDB connection status: Connected", w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusLine_Disconnected(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "MongoDB", err: errors.New("no primary")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running... MongoDB connection status: Disconnected", w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "MongoDB"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "9.9.9", resp["version"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "MongoDB", err: errors.New("no primary")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}

func TestVideoLifecycle(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "in-memory store"})

	body, _ := json.Marshal(gin.H{"title": "Launch", "thumbnail": "launch.png", "link": "https://videos.example.com/launch"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/videos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(mustJSON(t, created)), w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/videos/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreflight(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "MongoDB"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/videos/abc", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(stubConnection{name: "MongoDB"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{code="200",method="GET",route="/api/videos"} 1`)
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
