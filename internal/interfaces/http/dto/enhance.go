package dto

import (
	"prompt-enhancer-api/internal/domain/entity"
)

// EnhanceRequest 提示词增强请求，JSON 与表单提交共用
type EnhanceRequest struct {
	APIKey    string `json:"api_key" form:"api_key"`
	Context   string `json:"context" form:"context"`
	Task      string `json:"task" form:"task"`
	Format    string `json:"format" form:"format"`
	Tone      string `json:"tone" form:"tone"`
	Example   string `json:"example" form:"example"`
	WordLimit int    `json:"word_limit" form:"word_limit"`
}

// ToPromptRequest 转换为领域对象（不含 API Key）
func (r *EnhanceRequest) ToPromptRequest() *entity.PromptRequest {
	if r == nil {
		return &entity.PromptRequest{}
	}
	return &entity.PromptRequest{
		Context:   r.Context,
		Task:      r.Task,
		Format:    r.Format,
		Tone:      r.Tone,
		Example:   r.Example,
		WordLimit: r.WordLimit,
	}
}

// EnhanceResponse 增强结果
type EnhanceResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	Model          string `json:"model"`
	WordLimit      int    `json:"word_limit"`
}

// PreviewResponse 渲染后的消息，不调用模型
type PreviewResponse struct {
	SystemMessage string `json:"system_message"`
	UserMessage   string `json:"user_message"`
	WordLimit     int    `json:"word_limit"`
}
