package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

// stubModel 测试用的生成后端替身
type stubModel struct {
	output string
	err    error
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: s.output},
		},
	}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func newStubGeneration(output string, err error) *GenerationService {
	return NewGenerationService(&LLMClient{
		model:   &stubModel{output: output, err: err},
		backend: BackendOpenAI,
	})
}

func newOfflineGeneration() *GenerationService {
	return NewGenerationService(&LLMClient{backend: BackendNone})
}

func TestGenerateReturnsBackendOutput(t *testing.T) {
	gen := newStubGeneration("backend says hi", nil)
	got := gen.Generate(context.Background(), "any prompt", QuestionRequest{Question: "hi"})
	assert.Equal(t, "backend says hi", got)
}

func TestGenerateFallsBackOnCallFailure(t *testing.T) {
	gen := newStubGeneration("", fmt.Errorf("quota exceeded"))
	got := gen.Generate(context.Background(), "any prompt", QuestionRequest{Question: "any complaints?"})
	assert.Equal(t, QuestionFallback("any complaints?"), got)
}

func TestGenerateFallsBackOnEmptyChoices(t *testing.T) {
	gen := NewGenerationService(&LLMClient{
		model:   &emptyModel{},
		backend: BackendGemini,
	})
	got := gen.Generate(context.Background(), "any prompt", ReviewAnalysisRequest{Rating: 3, Review: ""})
	assert.Equal(t, ReviewAnalysisRequest{Rating: 3, Review: ""}.Respond(), got)
}

func TestGenerateFallsBackWithoutBackend(t *testing.T) {
	gen := newOfflineGeneration()
	got := gen.Generate(context.Background(), "any prompt", QuestionRequest{Question: "how many reviews?"})
	assert.Equal(t, QuestionFallback("how many reviews?"), got)
}

func TestNewLLMClientSelectsBackendOnce(t *testing.T) {
	// 没有任何凭证时选定"无后端"，调用全部走降级
	client, err := NewLLMClient("", "")
	assert.NoError(t, err)
	assert.Equal(t, BackendNone, client.Backend())

	// 非sk-前缀的OpenAI凭证不识别为OpenAI
	client, err = NewLLMClient("not-a-real-key", "")
	assert.NoError(t, err)
	assert.Equal(t, BackendNone, client.Backend())
}

// emptyModel 返回空choices的后端替身
type emptyModel struct{}

func (e *emptyModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}

func (e *emptyModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}
