package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-enhancer-api/internal/application/enhancer"
	"prompt-enhancer-api/internal/config"
	"prompt-enhancer-api/internal/domain/entity"
	"prompt-enhancer-api/internal/interfaces/http/handler"
	"prompt-enhancer-api/internal/interfaces/http/middleware"
	apperrors "prompt-enhancer-api/pkg/errors"
	"prompt-enhancer-api/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEnhancer struct{}

func (stubEnhancer) Enhance(_ context.Context, _ string, req *entity.PromptRequest) enhancer.Outcome {
	if strings.TrimSpace(req.Task) == "" {
		return enhancer.ValidationError(apperrors.CodeInvalidParam, enhancer.MsgTaskRequired)
	}
	return enhancer.Success("enhanced: "+req.Task, "gpt-4")
}

func (stubEnhancer) Preview(_ context.Context, req *entity.PromptRequest) (string, string, error) {
	return "system", "user: " + req.Task, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "prompt-enhancer"
	cfg.App.Env = "test"
	cfg.LLM.Model = "gpt-4"
	cfg.Observability.Metrics.Enabled = true
	cfg.Observability.Metrics.Path = "/metrics"
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.Config) *Router {
	t.Helper()
	e := stubEnhancer{}
	limits := entity.DefaultWordLimitRange
	r, err := New(cfg, Handlers{
		Health:  handler.NewHealthHandler("v-test", cfg.LLM, e),
		Enhance: handler.NewEnhanceHandler(e, limits),
		Page:    handler.NewPageHandler(e, limits, "v-test"),
	})
	require.NoError(t, err)
	return r
}

func serve(r *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t, testConfig())

	cases := []struct {
		method string
		path   string
		body   string
		ctype  string
		status int
		want   string
	}{
		{http.MethodGet, "/health", "", "", http.StatusOK, `"status":"ok"`},
		{http.MethodGet, "/live", "", "", http.StatusOK, `"status":"ok"`},
		{http.MethodGet, "/ready", "", "", http.StatusOK, `"llm_config"`},
		{http.MethodGet, "/", "", "", http.StatusOK, "AI Prompt Enhancer"},
		{http.MethodPost, "/", "task=Plan+a+trip", "application/x-www-form-urlencoded", http.StatusOK, "enhanced: Plan a trip"},
		{http.MethodPost, "/v1/prompts/enhance", `{"task":"Plan a trip"}`, "application/json", http.StatusOK, `"enhanced_prompt":"enhanced: Plan a trip"`},
		{http.MethodPost, "/v1/prompts/enhance", `{}`, "application/json", http.StatusBadRequest, enhancer.MsgTaskRequired},
		{http.MethodPost, "/v1/prompts/preview", `{"task":"Plan"}`, "application/json", http.StatusOK, `"user_message":"user: Plan"`},
		{http.MethodGet, "/v1/prompts/enhance", "", "", http.StatusNotFound, ""},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.ctype != "" {
				req.Header.Set("Content-Type", tc.ctype)
			}
			w := serve(r, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w = serve(r, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRecoveryReturnsJSON(t *testing.T) {
	r := newTestRouter(t, testConfig())
	r.Engine().GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, testConfig())

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/live", "200"))
	serve(r, httptest.NewRequest(http.MethodGet, "/live", nil))
	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/live", "200"))
	assert.Equal(t, before+1, after)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prompt_enhancer_http_requests_total")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Observability.Metrics.Enabled = false
	r := newTestRouter(t, cfg)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, testConfig())

	// httptest 请求的 Host 为 example.com
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"cross origin", "https://client.test", "*"},
		{"same origin", "http://example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/v1/prompts/enhance", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := serve(r, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
