package enhancer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// httpStatusCoder 暴露 HTTP 状态码的错误
type httpStatusCoder interface {
	HTTPStatusCode() int
}

// statusInMessage 匹配 go-openai 错误文本中的 "status code: 429"
var statusInMessage = regexp.MustCompile(`status code:\s*(\d{3})`)

// providerError 从错误链中提取到的提供商信息
type providerError struct {
	status int
	code   string
	detail string
}

// Classify 将补全调用返回的错误归类为 Outcome，从不返回 OutcomeSuccess
func Classify(err error) Outcome {
	if err == nil {
		return UnknownError("empty error")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return UnknownError(err.Error())
	}

	msg := strings.ToLower(err.Error())
	pe, fromProvider := extractProviderError(err)

	switch {
	case pe.status == http.StatusUnauthorized || pe.status == http.StatusForbidden,
		pe.code == "invalid_api_key",
		isAuthMessage(msg):
		return AuthError(detailOf(pe, err))
	case pe.status == http.StatusTooManyRequests,
		pe.code == "rate_limit_exceeded" || pe.code == "insufficient_quota",
		isRateLimitMessage(msg):
		return RateLimitError(detailOf(pe, err))
	case fromProvider:
		return APIError(detailOf(pe, err))
	case isEmptyCompletionMessage(msg):
		return APIError(err.Error())
	default:
		return UnknownError(err.Error())
	}
}

func extractProviderError(err error) (providerError, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return providerError{
			status: apiErr.HTTPStatusCode,
			code:   strings.ToLower(codeString(apiErr.Code)),
			detail: apiErr.Message,
		}, true
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return providerError{status: reqErr.HTTPStatusCode, detail: reqErr.Error()}, true
	}

	var sc httpStatusCoder
	if errors.As(err, &sc) {
		return providerError{status: sc.HTTPStatusCode(), detail: err.Error()}, true
	}

	if m := statusInMessage.FindStringSubmatch(err.Error()); m != nil {
		status, _ := strconv.Atoi(m[1])
		return providerError{status: status, detail: err.Error()}, true
	}
	return providerError{}, false
}

func codeString(code any) string {
	switch c := code.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

func detailOf(pe providerError, err error) string {
	if d := strings.TrimSpace(pe.detail); d != "" {
		return d
	}
	return err.Error()
}

func isAuthMessage(msg string) bool {
	switch {
	case strings.Contains(msg, "invalid_api_key"):
		return true
	case strings.Contains(msg, "incorrect api key"):
		return true
	case strings.Contains(msg, "invalid api key"):
		return true
	case strings.Contains(msg, "401 unauthorized"):
		return true
	default:
		return false
	}
}

func isRateLimitMessage(msg string) bool {
	switch {
	case strings.Contains(msg, "rate_limit_exceeded"):
		return true
	case strings.Contains(msg, "rate limit"):
		return true
	case strings.Contains(msg, "too many requests"):
		return true
	default:
		return false
	}
}

// isEmptyCompletionMessage 提供商应答成功但没有任何 choice
func isEmptyCompletionMessage(msg string) bool {
	return strings.Contains(msg, "empty choices") || strings.Contains(msg, "empty completion")
}
