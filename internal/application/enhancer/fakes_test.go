package enhancer

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fakeChatModel 记录调用并返回预设结果
type fakeChatModel struct {
	mu    sync.Mutex
	reply *schema.Message
	err   error
	calls int
	input []*schema.Message
	opts  *model.Options
}

func (m *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.input = input
	m.opts = model.GetCommonOptions(&model.Options{}, opts...)
	return m.reply, m.err
}

func (m *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

// fakeFactory 返回固定的 fakeChatModel 并记录收到的 API Key
type fakeFactory struct {
	model   *fakeChatModel
	err     error
	apiKeys []string
}

func (f *fakeFactory) ForAPIKey(_ context.Context, apiKey string) (model.BaseChatModel, error) {
	f.apiKeys = append(f.apiKeys, apiKey)
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

// fakeCompleter 直接返回预设 Outcome
type fakeCompleter struct {
	out    Outcome
	calls  int
	system string
	user   string
	apiKey string
}

func (c *fakeCompleter) RequestCompletion(_ context.Context, apiKey, systemMessage, userMessage string) Outcome {
	c.calls++
	c.apiKey = apiKey
	c.system = systemMessage
	c.user = userMessage
	return c.out
}
