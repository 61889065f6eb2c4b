// Package wire 提供依赖注入配置
package wire

import (
	"prompt-enhancer-api/internal/application/enhancer"
	"prompt-enhancer-api/internal/config"
	"prompt-enhancer-api/internal/domain/entity"
	"prompt-enhancer-api/internal/interfaces/http/handler"
)

// ProvideWordLimits 字数限制范围
func ProvideWordLimits(cfg *config.Config) entity.WordLimitRange {
	return entity.WordLimitRange{
		Min:     cfg.Prompt.MinWordLimit,
		Max:     cfg.Prompt.MaxWordLimit,
		Default: cfg.Prompt.DefaultWordLimit,
	}
}

// ProvideCompletionParams 补全请求参数
//
// provider/model/max_tokens 未配置时沿用默认值；temperature 直接取配置值，0 合法。
func ProvideCompletionParams(cfg *config.Config) enhancer.CompletionParams {
	p := enhancer.DefaultCompletionParams
	p.Temperature = float32(cfg.LLM.Temperature)
	if cfg.LLM.Provider != "" {
		p.Provider = cfg.LLM.Provider
	}
	if cfg.LLM.Model != "" {
		p.Model = cfg.LLM.Model
	}
	if cfg.LLM.MaxTokens > 0 {
		p.MaxTokens = cfg.LLM.MaxTokens
	}
	return p
}

// ProvideHealthHandler 健康检查处理器
func ProvideHealthHandler(cfg *config.Config, e handler.Enhancer) *handler.HealthHandler {
	return handler.NewHealthHandler(cfg.App.Version, cfg.LLM, e)
}

// ProvidePageHandler 表单页处理器
func ProvidePageHandler(cfg *config.Config, e handler.Enhancer, limits entity.WordLimitRange) *handler.PageHandler {
	return handler.NewPageHandler(e, limits, cfg.App.Version)
}
