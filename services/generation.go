package services

import (
	"FeedbackGo/config"
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// 托管调用的超时时间，超时按调用失败处理并走降级
const generationTimeout = 30 * time.Second

// GenerationService 混合生成调度器。Generate对任意输入都返回文本：
// 托管后端不可用或调用失败时，当次调用路由到本地降级引擎，
// 进程级的后端选择不变，错误不向调用方传播。
type GenerationService struct {
	client *LLMClient
}

func NewGenerationService(client *LLMClient) *GenerationService {
	return &GenerationService{
		client: client,
	}
}

// Generate 用选定的托管后端生成文本，失败时用fb本地兜底
func (s *GenerationService) Generate(ctx context.Context, prompt string, fb FallbackRequest) string {
	if s.client == nil || s.client.backend == BackendNone {
		config.Logger.Infow("无可用生成后端，使用本地降级",
			"kind", ErrBackendUnavailable.Error(),
		)
		return fb.Respond()
	}

	callCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	response, err := s.client.model.GenerateContent(callCtx, messages)
	if err != nil {
		config.Logger.Errorw("托管后端调用失败，使用本地降级",
			"kind", ErrBackendCallFailed.Error(),
			"error", err,
			"backend", s.client.backend,
		)
		return fb.Respond()
	}

	if len(response.Choices) == 0 {
		config.Logger.Errorw("托管后端未返回有效内容，使用本地降级",
			"kind", ErrBackendCallFailed.Error(),
			"backend", s.client.backend,
		)
		return fb.Respond()
	}

	return response.Choices[0].Content
}
