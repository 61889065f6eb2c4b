package enhancer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	llmctx "prompt-enhancer-api/internal/domain/service"
	workflowport "prompt-enhancer-api/internal/workflow/port"
)

const workflowEnhance = "prompt_enhance"

// CompletionParams 补全请求的固定解码参数
type CompletionParams struct {
	Provider    string
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultCompletionParams gpt-4，temperature 0.7，最多 400 个输出 token
var DefaultCompletionParams = CompletionParams{
	Provider:    "openai",
	Model:       "gpt-4",
	Temperature: 0.7,
	MaxTokens:   400,
}

// Completer 发起一次补全请求并返回归类后的结果
type Completer interface {
	RequestCompletion(ctx context.Context, apiKey, systemMessage, userMessage string) Outcome
}

// Gateway 对话补全网关：每次调用恰好发出一个请求，不重试
type Gateway struct {
	factory workflowport.ChatModelFactory
	params  CompletionParams
}

// NewGateway 创建补全网关
func NewGateway(factory workflowport.ChatModelFactory, params CompletionParams) *Gateway {
	return &Gateway{factory: factory, params: params}
}

// RequestCompletion 发送 [system, user] 两条消息，所有失败都在此处转换为 Outcome
func (g *Gateway) RequestCompletion(ctx context.Context, apiKey, systemMessage, userMessage string) Outcome {
	text, err := g.complete(ctx, apiKey, systemMessage, userMessage)
	if err != nil {
		return Classify(err)
	}
	return Success(text, g.params.Model)
}

func (g *Gateway) complete(ctx context.Context, apiKey, systemMessage, userMessage string) (string, error) {
	if g == nil || g.factory == nil {
		return "", fmt.Errorf("llm factory not configured")
	}

	ctx = llmctx.WithWorkflowProvider(ctx, workflowEnhance, g.params.Provider)
	chatModel, err := g.factory.ForAPIKey(ctx, apiKey)
	if err != nil {
		return "", err
	}

	msgs := []*schema.Message{
		schema.SystemMessage(systemMessage),
		schema.UserMessage(userMessage),
	}
	outMsg, err := chatModel.Generate(ctx, msgs, g.modelOptions()...)
	if err != nil {
		return "", err
	}
	if outMsg == nil {
		return "", &emptyCompletionError{}
	}

	content := strings.TrimSpace(outMsg.Content)
	if content == "" {
		return "", &emptyCompletionError{}
	}
	return content, nil
}

func (g *Gateway) modelOptions() []model.Option {
	opts := make([]model.Option, 0, 3)
	if m := strings.TrimSpace(g.params.Model); m != "" {
		opts = append(opts, model.WithModel(m))
	}
	opts = append(opts, model.WithTemperature(g.params.Temperature))
	if g.params.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(g.params.MaxTokens))
	}
	return opts
}

// emptyCompletionError 提供商返回了没有文本的补全
type emptyCompletionError struct{}

func (e *emptyCompletionError) Error() string {
	return "empty completion returned by provider"
}

// HTTPStatusCode 请求本身成功，按提供商侧错误归类
func (e *emptyCompletionError) HTTPStatusCode() int {
	return http.StatusOK
}
