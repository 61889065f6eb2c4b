// Package enhancer 实现提示词增强：校验表单、渲染指令、调用对话补全并归类结果
package enhancer

import (
	apperrors "prompt-enhancer-api/pkg/errors"
)

// OutcomeKind 结果类别
type OutcomeKind string

const (
	OutcomeSuccess         OutcomeKind = "success"
	OutcomeValidationError OutcomeKind = "validation_error"
	OutcomeAuthError       OutcomeKind = "auth_error"
	OutcomeRateLimitError  OutcomeKind = "rate_limit_error"
	OutcomeAPIError        OutcomeKind = "api_error"
	OutcomeUnknownError    OutcomeKind = "unknown_error"
)

// 面向用户的提示文案
const (
	MsgTaskRequired   = "Please enter at least a task to generate a prompt."
	MsgAPIKeyMissing  = "API key not found. Please enter your OpenAI API key above."
	MsgAuthFailed     = "Authentication failed. Please check that your OpenAI API key is correct."
	MsgRateLimited    = "Rate limit exceeded. Please wait a moment and try again."
	msgAPIErrorPrefix = "OpenAI API error: "
	msgUnknownPrefix  = "Error: "
)

// Outcome 一次提交的唯一结果
//
// Kind 为 OutcomeSuccess 时 Text 为模型返回的文本，否则 Message 为展示给用户的错误文案。
type Outcome struct {
	Kind    OutcomeKind
	Text    string
	Message string
	Detail  string
	Code    apperrors.ErrorCode
	Model   string
}

// OK 是否成功
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// HTTPStatus 结果对应的 HTTP 状态码
func (o Outcome) HTTPStatus() int {
	return apperrors.HTTPStatusOf(o.Code)
}

// AppError 失败结果转为 AppError，成功时返回 nil
func (o Outcome) AppError() *apperrors.AppError {
	if o.OK() {
		return nil
	}
	err := apperrors.New(o.Code, o.Message)
	if o.Detail != "" {
		err = err.WithDetail(o.Detail)
	}
	return err
}

// Success 成功结果
func Success(text, model string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text, Code: apperrors.CodeSuccess, Model: model}
}

// ValidationError 调用方输入不完整，不会触达网络
func ValidationError(code apperrors.ErrorCode, message string) Outcome {
	return Outcome{Kind: OutcomeValidationError, Message: message, Code: code}
}

// AuthError 提供商拒绝了凭证
func AuthError(detail string) Outcome {
	return Outcome{Kind: OutcomeAuthError, Message: MsgAuthFailed, Detail: detail, Code: apperrors.CodeLLMAuthFailed}
}

// RateLimitError 提供商限流
func RateLimitError(detail string) Outcome {
	return Outcome{Kind: OutcomeRateLimitError, Message: MsgRateLimited, Detail: detail, Code: apperrors.CodeLLMRateLimited}
}

// APIError 提供商返回的其他错误，detail 为提供商的错误信息
func APIError(detail string) Outcome {
	return Outcome{Kind: OutcomeAPIError, Message: msgAPIErrorPrefix + detail, Detail: detail, Code: apperrors.CodeLLMProviderError}
}

// UnknownError 其他意外错误，detail 为 err.Error()
func UnknownError(detail string) Outcome {
	return Outcome{Kind: OutcomeUnknownError, Message: msgUnknownPrefix + detail, Detail: detail, Code: apperrors.CodeUnknown}
}
