package services

import (
	"FeedbackGo/models"
	"context"
	"fmt"
	"strings"
)

// 拼入问答上下文的最大记录数
const maxContextRecords = 50

// InsightService 数据问答服务：把最近的评价记录拼成上下文数据块，
// 连同问题一起交给生成调度器回答。
type InsightService struct {
	gen *GenerationService
}

func NewInsightService(gen *GenerationService) *InsightService {
	return &InsightService{
		gen: gen,
	}
}

// Answer 基于最近的评价记录回答自由提问。
// 与分析服务共用同一调度器，降级时按问题关键词返回固定段落。
func (s *InsightService) Answer(ctx context.Context, question string, records []models.Review) string {
	return s.AnswerWithContext(ctx, question, FormatReviewContext(records))
}

// AnswerWithContext 用已拼好的上下文数据块回答提问，
// 供调用方复用缓存的上下文时使用
func (s *InsightService) AnswerWithContext(ctx context.Context, question, contextBlock string) string {
	prompt := BuildChatPrompt(contextBlock, question)
	return s.gen.Generate(ctx, prompt, QuestionRequest{
		Question: question,
	})
}

// FormatReviewContext 把最多50条记录格式化为上下文数据块
func FormatReviewContext(records []models.Review) string {
	if len(records) > maxContextRecords {
		records = records[:maxContextRecords]
	}

	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("[%d/5 stars]: \"%s\" (Summary: %s)", r.Rating, r.Content, r.Summary))
	}
	return sb.String()
}
