package services

import (
	"FeedbackGo/config"
	"FeedbackGo/models"
	"context"
	"encoding/json"
	"strings"
)

// AnalysisService 评价分析服务：渲染提示词、调用生成调度器、
// 解析结构化输出，任何解析失败都用原始评分和评价重新推导兜底结果。
type AnalysisService struct {
	gen *GenerationService
}

func NewAnalysisService(gen *GenerationService) *AnalysisService {
	return &AnalysisService{
		gen: gen,
	}
}

// Analyze 分析一条用户评价，返回结构化结果和本次使用的完整提示词。
// 只有未知模板版本会返回错误；生成和解析的失败都在内部消化，
// 调用方拿到的永远是满足契约的结果。
func (s *AnalysisService) Analyze(ctx context.Context, version string, rating int, review string) (models.AnalysisResult, string, error) {
	prompt, err := BuildAnalysisPrompt(version, rating, review)
	if err != nil {
		return models.AnalysisResult{}, "", err
	}

	raw := s.gen.Generate(ctx, prompt, ReviewAnalysisRequest{
		Rating: rating,
		Review: review,
	})

	result, err := parseAnalysisResult(raw)
	if err != nil {
		// 解析失败时不使用不可解析的文本，直接从原始输入重新推导
		config.Logger.Warnw("分析结果解析失败，使用本地规则重新推导",
			"kind", ErrParseFailure.Error(),
			"error", err,
			"rawLength", len(raw),
		)
		return ReviewFallback(rating, review), prompt, nil
	}

	return result, prompt, nil
}

// parseAnalysisResult 剥离代码围栏标记后按契约解析JSON
func parseAnalysisResult(raw string) (models.AnalysisResult, error) {
	jsonStr := strings.ReplaceAll(raw, "```json", "")
	jsonStr = strings.ReplaceAll(jsonStr, "```", "")
	jsonStr = strings.TrimSpace(jsonStr)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return models.AnalysisResult{}, err
	}

	// 缺少字段同样视为不满足契约
	if !result.Valid() {
		return models.AnalysisResult{}, ErrParseFailure
	}

	return result, nil
}
