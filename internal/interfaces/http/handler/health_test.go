package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"prompt-enhancer-api/internal/config"
)

func newHealthRouter(h *HealthHandler) http.Handler {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/live", h.Live)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthAndLive(t *testing.T) {
	r := newHealthRouter(NewHealthHandler("1.2.3", config.LLMConfig{Model: "gpt-4"}, &fakeEnhancer{}))

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1.2.3", body["version"])

	w = get(r, "/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestReady(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		r := newHealthRouter(NewHealthHandler("", config.LLMConfig{Model: "gpt-4"}, &fakeEnhancer{}))

		w := get(r, "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "ok", body["status"])
		checks := body["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["template"].(map[string]any)["status"])
	})

	t.Run("model missing", func(t *testing.T) {
		r := newHealthRouter(NewHealthHandler("", config.LLMConfig{}, &fakeEnhancer{}))

		w := get(r, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		checks := decode(t, w)["checks"].(map[string]any)
		assert.Equal(t, "missing", checks["llm_config"].(map[string]any)["status"])
	})

	t.Run("template broken", func(t *testing.T) {
		fe := &fakeEnhancer{previewErr: errors.New("parse failed")}
		r := newHealthRouter(NewHealthHandler("", config.LLMConfig{Model: "gpt-4"}, fe))

		w := get(r, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode(t, w)
		assert.Equal(t, "not_ready", body["status"])
		tpl := body["checks"].(map[string]any)["template"].(map[string]any)
		assert.Equal(t, "error", tpl["status"])
		assert.Equal(t, "parse failed", tpl["error"])
	})
}
