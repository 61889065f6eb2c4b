package enhancer

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"prompt-enhancer-api/internal/domain/entity"
	"prompt-enhancer-api/internal/workflow/prompt"
	apperrors "prompt-enhancer-api/pkg/errors"
	"prompt-enhancer-api/pkg/logger"
	"prompt-enhancer-api/pkg/metrics"
	"prompt-enhancer-api/pkg/tracer"
)

// Service 处理一次表单提交：校验 -> 渲染 -> 补全
//
// 无共享可变状态，可被多个请求并发调用。
type Service struct {
	builder   *prompt.Builder
	completer Completer
}

// NewService 创建增强服务
func NewService(builder *prompt.Builder, completer Completer) *Service {
	return &Service{builder: builder, completer: completer}
}

// Enhance 校验输入并请求补全；校验失败时不发出任何网络请求
func (s *Service) Enhance(ctx context.Context, apiKey string, req *entity.PromptRequest) Outcome {
	ctx, span := tracer.Start(ctx, "enhancer.Enhance")
	defer span.End()

	out := s.enhance(ctx, apiKey, req)

	span.SetAttributes(attribute.String("enhance.outcome", string(out.Kind)))
	if !out.OK() {
		span.SetStatus(codes.Error, string(out.Kind))
	}
	metrics.EnhanceTotal.WithLabelValues(string(out.Kind)).Inc()
	return out
}

func (s *Service) enhance(ctx context.Context, apiKey string, req *entity.PromptRequest) Outcome {
	if !req.HasTask() {
		logger.Debug(ctx, "enhance rejected", "reason", "task missing")
		return ValidationError(apperrors.CodeInvalidParam, MsgTaskRequired)
	}
	if strings.TrimSpace(apiKey) == "" {
		logger.Debug(ctx, "enhance rejected", "reason", "api key missing")
		return ValidationError(apperrors.CodeAPIKeyMissing, MsgAPIKeyMissing)
	}
	if s == nil || s.builder == nil || s.completer == nil {
		return UnknownError("enhancer not configured")
	}

	system, user, err := s.builder.Render(ctx, req)
	if err != nil {
		logger.Error(ctx, "render enhance prompt failed", err)
		return UnknownError(err.Error())
	}
	metrics.EnhanceWordLimit.Observe(float64(req.Normalize(s.builder.Limits()).WordLimit))

	out := s.completer.RequestCompletion(ctx, strings.TrimSpace(apiKey), system, user)
	if out.OK() {
		logger.Info(ctx, "enhance completed", "model", out.Model, "chars", len(out.Text))
	} else {
		logger.Warn(ctx, "enhance failed", "kind", string(out.Kind), "detail", out.Detail)
	}
	return out
}

// Preview 只渲染消息，不调用提供商
func (s *Service) Preview(ctx context.Context, req *entity.PromptRequest) (system string, user string, err error) {
	if !req.HasTask() {
		return "", "", apperrors.New(apperrors.CodeInvalidParam, MsgTaskRequired)
	}
	if s == nil || s.builder == nil {
		return "", "", errors.New("prompt builder not configured")
	}
	return s.builder.Render(ctx, req)
}
