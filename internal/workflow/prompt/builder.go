// Package prompt 负责把表单字段渲染为发送给对话模型的消息
package prompt

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"prompt-enhancer-api/internal/domain/entity"
)

// Builder 提示词构建器
//
// 输出只取决于输入字段：相同输入得到逐字节相同的消息。
type Builder struct {
	registry *Registry
	limits   entity.WordLimitRange
}

// NewBuilder 创建构建器，limits 用于收敛字数限制
func NewBuilder(registry *Registry, limits entity.WordLimitRange) *Builder {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Builder{registry: registry, limits: limits}
}

// Limits 返回字数范围
func (b *Builder) Limits() entity.WordLimitRange {
	return b.limits
}

// BuildMessages 渲染 [system, user] 两条消息，空白的可选字段替换为占位文本
func (b *Builder) BuildMessages(ctx context.Context, req *entity.PromptRequest) ([]*schema.Message, error) {
	tpl, err := b.registry.ChatTemplate(PromptEnhanceV1)
	if err != nil {
		return nil, err
	}

	in := req.Normalize(b.limits)
	msgs, err := tpl.Format(ctx, map[string]any{
		"context":    in.Context,
		"task":       in.Task,
		"format":     in.Format,
		"tone":       in.Tone,
		"example":    in.Example,
		"word_limit": in.WordLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("format enhance prompt: %w", err)
	}
	if len(msgs) != 2 {
		return nil, fmt.Errorf("enhance prompt produced %d messages, want 2", len(msgs))
	}
	return msgs, nil
}

// Render 返回 system 与 user 消息的文本
func (b *Builder) Render(ctx context.Context, req *entity.PromptRequest) (system string, user string, err error) {
	msgs, err := b.BuildMessages(ctx, req)
	if err != nil {
		return "", "", err
	}
	return msgs[0].Content, msgs[1].Content, nil
}
