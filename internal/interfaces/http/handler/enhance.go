// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"prompt-enhancer-api/internal/application/enhancer"
	"prompt-enhancer-api/internal/domain/entity"
	"prompt-enhancer-api/internal/interfaces/http/dto"
	apperrors "prompt-enhancer-api/pkg/errors"
	"prompt-enhancer-api/pkg/logger"
)

// Enhancer 处理器对应用层的依赖
type Enhancer interface {
	Enhance(ctx context.Context, apiKey string, req *entity.PromptRequest) enhancer.Outcome
	Preview(ctx context.Context, req *entity.PromptRequest) (system string, user string, err error)
}

// EnhanceHandler 提示词增强 JSON API
type EnhanceHandler struct {
	enhancer Enhancer
	limits   entity.WordLimitRange
}

// NewEnhanceHandler 创建处理器
func NewEnhanceHandler(e Enhancer, limits entity.WordLimitRange) *EnhanceHandler {
	return &EnhanceHandler{enhancer: e, limits: limits}
}

// Enhance 生成增强后的提示词
// @Summary 增强提示词
// @Tags Prompts
// @Accept json
// @Produce json
// @Param body body dto.EnhanceRequest true "表单字段与 API Key"
// @Success 200 {object} dto.Response[dto.EnhanceResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/prompts/enhance [post]
func (h *EnhanceHandler) Enhance(c *gin.Context) {
	var req dto.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug(c.Request.Context(), "bind enhance request failed", "error", err.Error())
		dto.AppError(c, apperrors.New(apperrors.CodeInvalidParam, "invalid request body").WithDetail(err.Error()))
		return
	}

	promptReq := req.ToPromptRequest()
	out := h.enhancer.Enhance(c.Request.Context(), req.APIKey, promptReq)
	if !out.OK() {
		dto.AppError(c, out.AppError())
		return
	}

	dto.Success(c, dto.EnhanceResponse{
		EnhancedPrompt: out.Text,
		Model:          out.Model,
		WordLimit:      h.limits.Clamp(promptReq.WordLimit),
	})
}

// Preview 返回将要发送的消息，不调用模型
// @Summary 预览渲染结果
// @Tags Prompts
// @Accept json
// @Produce json
// @Param body body dto.EnhanceRequest true "表单字段"
// @Success 200 {object} dto.Response[dto.PreviewResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/prompts/preview [post]
func (h *EnhanceHandler) Preview(c *gin.Context) {
	var req dto.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AppError(c, apperrors.New(apperrors.CodeInvalidParam, "invalid request body").WithDetail(err.Error()))
		return
	}

	promptReq := req.ToPromptRequest()
	system, user, err := h.enhancer.Preview(c.Request.Context(), promptReq)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Code == apperrors.CodeUnknown {
			logger.Error(c.Request.Context(), "render preview failed", err)
		}
		dto.AppError(c, appErr)
		return
	}

	dto.Success(c, dto.PreviewResponse{
		SystemMessage: system,
		UserMessage:   user,
		WordLimit:     h.limits.Clamp(promptReq.WordLimit),
	})
}
