package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"prompt-enhancer-api/internal/config"
	"prompt-enhancer-api/internal/domain/entity"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version  string
	llm      config.LLMConfig
	enhancer Enhancer
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(version string, llm config.LLMConfig, e Enhancer) *HealthHandler {
	return &HealthHandler{version: version, llm: llm, enhancer: e}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口：LLM 配置完整且提示词模板可渲染
// 不调用提供商，API Key 由每次提交提供。
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"llm_config": {Status: "ok"},
		"template":   {Status: "unknown"},
	}
	ready := true

	if strings.TrimSpace(h.llm.Model) == "" {
		checks["llm_config"].Status = "missing"
		checks["llm_config"].Error = "llm.model not configured"
		ready = false
	}

	if h.enhancer == nil {
		checks["template"].Status = "missing"
		checks["template"].Error = "enhancer not configured"
		ready = false
	} else {
		start := time.Now()
		_, _, err := h.enhancer.Preview(ctx, &entity.PromptRequest{Task: "readiness probe"})
		checks["template"].LatencyMs = time.Since(start).Milliseconds()
		if err != nil {
			checks["template"].Status = "error"
			checks["template"].Error = err.Error()
			ready = false
		} else {
			checks["template"].Status = "ok"
		}
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
