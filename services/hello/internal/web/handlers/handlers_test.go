package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jredh-dev/hello/services/hello/config"
)

func testRouter(t *testing.T, cfg config.Config) (*Handler, *chi.Mux) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	h, err := New(cfg, log)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Routes(r)
	return h, r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomeProduction(t *testing.T) {
	_, r := testRouter(t, config.Config{
		Environment: config.Production,
		AppName:     "Test App",
		Version:     "1.0.0",
		GitCommit:   "abc123def456",
		GitHubRepo:  "https://github.com/user/repo.git",
	})

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<title>Test App</title>")
	assert.Contains(t, body, `<main class="layout-centered">`)
	assert.Contains(t, body, "<h1>👋 Hello World!</h1>")
	assert.Contains(t, body, "<h3>Test App</h3>")
	assert.Contains(t, body, "<strong>Environment:</strong> PRODUCTION")
	assert.Contains(t, body, "Welcome to the Hello World Streamlit application!")
	assert.Contains(t, body, `<div class="alert alert-success" role="alert">🚀 Running in Production mode</div>`)
	assert.Contains(t, body, "<hr>")
	assert.Contains(t, body, "<strong>Version:</strong> 1.0.0")
	assert.Contains(t, body, `<a href="https://github.com/user/repo/commit/abc123def456">abc123d</a>`)

	// Blocks appear in render order.
	title := strings.Index(body, "<h1>")
	alert := strings.Index(body, `class="alert alert-success"`)
	footer := strings.Index(body, `class="caption"`)
	assert.True(t, title < alert && alert < footer, "unexpected block order")
}

func TestHomeWithoutFooter(t *testing.T) {
	_, r := testRouter(t, config.Config{Environment: config.Development, AppName: "Dev App"})

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `class="alert alert-info"`)
	assert.Contains(t, body, "🔧 Running in Development mode")
	assert.NotContains(t, body, "<hr>")
	assert.NotContains(t, body, `class="caption"`)
}

func TestHomeEscapesConfiguredValues(t *testing.T) {
	_, r := testRouter(t, config.Config{
		Environment: config.UAT,
		AppName:     "<script>alert(1)</script>",
		Version:     "<b>1</b>",
	})

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, body, "<b>1</b>")
	assert.Contains(t, body, `class="alert alert-warning"`)
}

func TestVersion(t *testing.T) {
	h, r := testRouter(t, config.Config{
		Environment: config.UAT,
		AppName:     "Test App",
		Version:     "2.1.0",
		GitCommit:   "abc123",
		GitHubRepo:  "https://github.com/user/repo",
	})

	w := get(t, r, "/api/version")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp versionResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test App", resp.AppName)
	assert.Equal(t, config.UAT, resp.Environment)
	assert.Equal(t, "2.1.0", resp.Version)
	assert.Equal(t, "abc123", resp.GitCommit)
	assert.Equal(t, "https://github.com/user/repo/commit/abc123", resp.CommitURL)
	assert.Equal(t, h.InstanceID(), resp.InstanceID)
	assert.NotEmpty(t, resp.InstanceID)
}

func TestInstanceIDPerHandler(t *testing.T) {
	a, _ := testRouter(t, config.Config{})
	b, _ := testRouter(t, config.Config{})
	assert.NotEqual(t, a.InstanceID(), b.InstanceID())
}
