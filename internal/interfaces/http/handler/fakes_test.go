package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"prompt-enhancer-api/internal/application/enhancer"
	"prompt-enhancer-api/internal/domain/entity"
	"prompt-enhancer-api/internal/interfaces/http/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeEnhancer 记录收到的请求并返回预设结果
type fakeEnhancer struct {
	out        enhancer.Outcome
	previewErr error
	calls      int
	apiKey     string
	req        *entity.PromptRequest
}

func (f *fakeEnhancer) Enhance(_ context.Context, apiKey string, req *entity.PromptRequest) enhancer.Outcome {
	f.calls++
	f.apiKey = apiKey
	f.req = req
	return f.out
}

func (f *fakeEnhancer) Preview(_ context.Context, req *entity.PromptRequest) (string, string, error) {
	f.req = req
	if f.previewErr != nil {
		return "", "", f.previewErr
	}
	return "system:" + req.Task, "user:" + req.Task, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	tpl, err := web.Templates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tpl)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
