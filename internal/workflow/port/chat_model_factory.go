package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 定义对 LLM ChatModel 的最小依赖（port）。
// 每次提交使用调用方自己的 API Key，由基础设施层创建具体实现。
type ChatModelFactory interface {
	ForAPIKey(ctx context.Context, apiKey string) (model.BaseChatModel, error)
}
