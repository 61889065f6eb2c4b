//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"prompt-enhancer-api/internal/application/enhancer"
	"prompt-enhancer-api/internal/config"
	"prompt-enhancer-api/internal/infrastructure/llm"
	"prompt-enhancer-api/internal/interfaces/http/handler"
	"prompt-enhancer-api/internal/interfaces/http/router"
	"prompt-enhancer-api/internal/workflow/port"
	"prompt-enhancer-api/internal/workflow/prompt"
)

// InitializeApp 初始化应用
func InitializeApp(cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		PromptSet,
		LLMSet,
		EnhancerSet,
		RouterSet,
	)
	return nil, nil, nil
}

// PromptSet 提示词模板
var PromptSet = wire.NewSet(
	prompt.NewRegistry,
	ProvideWordLimits,
	prompt.NewBuilder,
)

// LLMSet 对话模型工厂
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(port.ChatModelFactory), new(*llm.EinoFactory)),
)

// EnhancerSet 增强服务
var EnhancerSet = wire.NewSet(
	ProvideCompletionParams,
	enhancer.NewGateway,
	wire.Bind(new(enhancer.Completer), new(*enhancer.Gateway)),
	enhancer.NewService,
	wire.Bind(new(handler.Enhancer), new(*enhancer.Service)),
)

// RouterSet 路由与处理器
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewEnhanceHandler,
	ProvidePageHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
