package llm

import (
	"context"
	"fmt"
	"strings"

	"prompt-enhancer-api/internal/config"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// EinoFactory 按调用方的 API Key 创建 Eino ChatModel
//
// 不缓存实例：API Key 属于单次提交，不在进程内保留。
type EinoFactory struct {
	config *config.LLMConfig
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{config: &cfg.LLM}
}

// ForAPIKey 使用给定 API Key 创建 OpenAI 兼容的 ChatModel
func (f *EinoFactory) ForAPIKey(ctx context.Context, apiKey string) (model.BaseChatModel, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	chatModel, err := openai.NewChatModel(ctx, f.chatModelConfig(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", f.config.Provider, err)
	}
	return chatModel, nil
}

// chatModelConfig 只含连接参数；模型名与解码参数由每次调用的 model.Option 指定
func (f *EinoFactory) chatModelConfig(apiKey string) *openai.ChatModelConfig {
	return &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: strings.TrimSpace(f.config.BaseURL),
		Timeout: f.config.Timeout,
	}
}
