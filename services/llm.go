package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// Backend 生成后端类型
type Backend string

const (
	BackendOpenAI Backend = "openai"
	BackendGemini Backend = "gemini"
	BackendNone   Backend = "none"
)

// LLMClient 混合生成客户端。后端在进程启动时选定一次，之后不再切换。
type LLMClient struct {
	model   llms.Model
	backend Backend
}

// NewLLMClient 根据凭证选择生成后端：
// 1. OpenAI凭证（sk-前缀）存在则只用OpenAI
// 2. 否则Gemini凭证存在则只用Gemini
// 3. 都没有则每次调用直接走本地降级
func NewLLMClient(openAIKey, geminiKey string) (*LLMClient, error) {
	if strings.HasPrefix(openAIKey, "sk-") {
		model, err := openai.New(
			openai.WithToken(openAIKey),
			openai.WithModel("gpt-3.5-turbo"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return &LLMClient{model: model, backend: BackendOpenAI}, nil
	}

	if geminiKey != "" {
		model, err := googleai.New(
			context.Background(),
			googleai.WithAPIKey(geminiKey),
			googleai.WithDefaultModel("gemini-1.5-flash"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return &LLMClient{model: model, backend: BackendGemini}, nil
	}

	// 无可用凭证：不视为启动错误，由降级引擎兜底
	return &LLMClient{model: nil, backend: BackendNone}, nil
}

// Backend 返回启动时选定的后端
func (c *LLMClient) Backend() Backend {
	return c.backend
}
