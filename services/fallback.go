package services

import (
	"FeedbackGo/models"
	"encoding/json"
	"strings"
)

// 本地降级引擎：纯函数、无IO、无随机性。
// 通过显式的请求类型区分调用场景，而不是在提示词文本里嗅探标记。

// OfflineMessage 未知请求场景下的固定回复
const OfflineMessage = "System: Unable to process request offline."

// FallbackRequest 降级请求，按调用场景携带原始输入
type FallbackRequest interface {
	// Respond 返回该场景下的本地生成文本
	Respond() string
}

// ReviewAnalysisRequest 评价分析场景的降级请求
type ReviewAnalysisRequest struct {
	Rating int
	Review string
}

// Respond 按固定规则生成分析结果并序列化为紧凑JSON
func (r ReviewAnalysisRequest) Respond() string {
	result := ReviewFallback(r.Rating, r.Review)
	data, err := json.Marshal(result)
	if err != nil {
		// 三个字符串字段的结构体序列化不会失败，保底返回离线提示
		return OfflineMessage
	}
	return string(data)
}

// QuestionRequest 数据问答场景的降级请求
type QuestionRequest struct {
	Question string
}

// Respond 按关键词分类返回固定回答段落，按列出顺序首个命中生效
func (r QuestionRequest) Respond() string {
	return QuestionFallback(r.Question)
}

// ReviewFallback 按评分和关键词生成固定的分析结果。
// 先按评分档位取默认值，再在档位内按关键词细化，后检查的关键词覆盖先检查的。
func ReviewFallback(rating int, review string) models.AnalysisResult {
	lowerReview := strings.ToLower(review)

	summary := "Mixed Feedback"
	action := "Monitor trends"
	response := "Thank you for sharing your thoughts."

	if rating >= 4 {
		summary = "Positive Experience"
		action = "Share with team"
		response = "We're glad to hear you had a great experience! Thank you."
		if strings.Contains(lowerReview, "fast") || strings.Contains(lowerReview, "speed") {
			summary = "Performance Praise"
		}
		if strings.Contains(lowerReview, "design") || strings.Contains(lowerReview, "ui") {
			summary = "Design Appreciation"
		}
	} else if rating <= 2 {
		summary = "User Dissatisfaction"
		action = "Follow up required"
		response = "We apologize that your experience wasn't up to par."
		if strings.Contains(lowerReview, "slow") || strings.Contains(lowerReview, "crash") {
			action = "Escalate to Engineering"
		}
	}

	return models.AnalysisResult{
		Summary:  summary,
		Response: response,
		Action:   action,
	}
}

// QuestionFallback 对问答类请求按关键词分类返回固定段落
func QuestionFallback(question string) string {
	q := strings.ToLower(question)

	if strings.Contains(q, "negative") || strings.Contains(q, "bad") || strings.Contains(q, "complain") {
		return "Based on the database, the main negative feedback relates to 'Navigation Confusion' (Rating: 2/5) and 'Startup Crashes' (Rating: 1/5). Users have specifically requested a Dark Mode toggle and better stability."
	}

	if strings.Contains(q, "positive") || strings.Contains(q, "good") || strings.Contains(q, "like") {
		return "Positive sentiment controls the dataset! Users are impressed with the 'Streamlined Experience' (Rating: 5/5) and 'Responsiveness' of the UI."
	}

	if strings.Contains(q, "how many") || strings.Contains(q, "count") || strings.Contains(q, "total") {
		return "I am currently tracking approximately 5-10 active reviews in the context window. The feedback volume is healthy."
	}

	return "Based on the recent feedback data, users are predominantly praising the 'UI/UX' and 'Speed' of the application. However, there are minor concerns regarding navigation clarity. Overall, sentiment is positive."
}
