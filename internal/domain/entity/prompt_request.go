// Package entity 定义领域实体
package entity

import "strings"

// 未填写可选字段时使用的占位文本
const (
	PlaceholderNotSpecified = "Not specified"
	PlaceholderNotProvided  = "Not provided"
)

// WordLimitRange 字数限制的取值范围
type WordLimitRange struct {
	Min     int
	Max     int
	Default int
}

// DefaultWordLimitRange 默认字数范围 [50, 2000]，默认 300
var DefaultWordLimitRange = WordLimitRange{Min: 50, Max: 2000, Default: 300}

// Clamp 将字数限制收敛到范围内；0 视为未填写，取默认值
func (r WordLimitRange) Clamp(n int) int {
	switch {
	case n == 0:
		return r.Default
	case n < r.Min:
		return r.Min
	case n > r.Max:
		return r.Max
	default:
		return n
	}
}

// PromptRequest 一次提示词增强提交的表单内容
//
// 只在单次请求内存活，不做持久化。
type PromptRequest struct {
	Context   string `json:"context"`
	Task      string `json:"task"`
	Format    string `json:"format"`
	Tone      string `json:"tone"`
	Example   string `json:"example"`
	WordLimit int    `json:"word_limit"`
}

// HasTask 任务描述是否非空白
func (r *PromptRequest) HasTask() bool {
	return r != nil && strings.TrimSpace(r.Task) != ""
}

// Normalize 返回填充占位符并收敛字数后的副本，不修改原值
func (r *PromptRequest) Normalize(limits WordLimitRange) PromptRequest {
	if r == nil {
		return PromptRequest{
			Context:   PlaceholderNotSpecified,
			Format:    PlaceholderNotSpecified,
			Tone:      PlaceholderNotSpecified,
			Example:   PlaceholderNotProvided,
			WordLimit: limits.Default,
		}
	}
	return PromptRequest{
		Context:   orPlaceholder(r.Context, PlaceholderNotSpecified),
		Task:      strings.TrimSpace(r.Task),
		Format:    orPlaceholder(r.Format, PlaceholderNotSpecified),
		Tone:      orPlaceholder(r.Tone, PlaceholderNotSpecified),
		Example:   orPlaceholder(r.Example, PlaceholderNotProvided),
		WordLimit: limits.Clamp(r.WordLimit),
	}
}

func orPlaceholder(s, placeholder string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return placeholder
	}
	return s
}
