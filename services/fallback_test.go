package services

import (
	"FeedbackGo/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewFallbackByRating(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		review string
		want   models.AnalysisResult
	}{
		{
			name:   "好评默认值",
			rating: 4,
			review: "really enjoying it",
			want: models.AnalysisResult{
				Summary:  "Positive Experience",
				Response: "We're glad to hear you had a great experience! Thank you.",
				Action:   "Share with team",
			},
		},
		{
			name:   "差评默认值",
			rating: 2,
			review: "not what I expected",
			want: models.AnalysisResult{
				Summary:  "User Dissatisfaction",
				Response: "We apologize that your experience wasn't up to par.",
				Action:   "Follow up required",
			},
		},
		{
			name:   "中评固定值",
			rating: 3,
			review: "it is okay I guess",
			want: models.AnalysisResult{
				Summary:  "Mixed Feedback",
				Response: "Thank you for sharing your thoughts.",
				Action:   "Monitor trends",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReviewFallback(tt.rating, tt.review)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReviewFallbackPositiveKeywords(t *testing.T) {
	// 性能关键词
	got := ReviewFallback(5, "Impressive speed and responsiveness.")
	assert.Equal(t, "Performance Praise", got.Summary)
	assert.Equal(t, "Share with team", got.Action)

	got = ReviewFallback(4, "so fast!")
	assert.Equal(t, "Performance Praise", got.Summary)

	// 设计关键词
	got = ReviewFallback(5, "The UI is gorgeous.")
	assert.Equal(t, "Design Appreciation", got.Summary)

	// 两类关键词同时出现时设计在后检查，覆盖性能
	got = ReviewFallback(5, "fast and great design")
	assert.Equal(t, "Design Appreciation", got.Summary)
}

func TestReviewFallbackNegativeKeywords(t *testing.T) {
	got := ReviewFallback(1, "Crash on startup. Unusable.")
	assert.Equal(t, models.AnalysisResult{
		Summary:  "User Dissatisfaction",
		Response: "We apologize that your experience wasn't up to par.",
		Action:   "Escalate to Engineering",
	}, got)

	got = ReviewFallback(2, "everything is so slow")
	assert.Equal(t, "Escalate to Engineering", got.Action)

	// 稳定性关键词只在差评档位生效
	got = ReviewFallback(3, "a bit slow sometimes")
	assert.Equal(t, "Monitor trends", got.Action)
}

func TestReviewFallbackContractAlwaysSatisfied(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		for _, review := range []string{"", "plain text", "fast crash design slow"} {
			got := ReviewFallback(rating, review)
			assert.True(t, got.Valid(), "rating=%d review=%q", rating, review)
		}
	}
}

func TestQuestionFallbackCategories(t *testing.T) {
	negative := QuestionFallback("What are the negative issues?")
	assert.Contains(t, negative, "Navigation Confusion")
	assert.Contains(t, negative, "Startup Crashes")

	positive := QuestionFallback("What do users like?")
	assert.Contains(t, positive, "Positive sentiment controls the dataset!")

	count := QuestionFallback("How many reviews are there?")
	assert.Contains(t, count, "5-10 active reviews")

	fallback := QuestionFallback("Tell me about the weather")
	assert.Contains(t, fallback, "sentiment is positive")
}

func TestQuestionFallbackFirstMatchWins(t *testing.T) {
	// 同时命中多个分类时按列出顺序取第一个
	got := QuestionFallback("Is the feedback negative or positive?")
	assert.Contains(t, got, "Navigation Confusion")
}

func TestReviewAnalysisRequestRespond(t *testing.T) {
	raw := ReviewAnalysisRequest{Rating: 5, Review: "great speed"}.Respond()
	assert.JSONEq(t, `{
		"summary": "Performance Praise",
		"response": "We're glad to hear you had a great experience! Thank you.",
		"action": "Share with team"
	}`, raw)
}

func TestQuestionRequestRespond(t *testing.T) {
	raw := QuestionRequest{Question: "any complaints?"}.Respond()
	assert.Equal(t, QuestionFallback("any complaints?"), raw)
}

func TestFallbackIsDeterministic(t *testing.T) {
	first := ReviewFallback(4, "fast and sleek design")
	second := ReviewFallback(4, "fast and sleek design")
	assert.Equal(t, first, second)

	assert.Equal(t, QuestionFallback("count"), QuestionFallback("count"))
}
